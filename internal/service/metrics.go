package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "superteam_bot_ai_requests_total",
			Help: "Total number of requests to the AI model runtime.",
		},
		[]string{"provider", "model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "superteam_bot_ai_request_duration_seconds",
			Help:    "Histogram of AI request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "model"},
	)
	aiTotalTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "superteam_bot_ai_total_tokens",
			Help:    "Histogram of total token counts per request (prompt + completion).",
			Buckets: prometheus.LinearBuckets(100, 100, 20),
		},
		[]string{"provider", "model"},
	)

	approvalsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "superteam_bot_approvals_submitted_total",
			Help: "Total number of drafts submitted for human approval.",
		},
	)
	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "superteam_bot_decisions_total",
			Help: "Total number of handled decisions, partitioned by outcome.",
		},
		[]string{"outcome"},
	)
)
