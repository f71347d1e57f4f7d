package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"superteam-bot/internal/model"
	"superteam-bot/internal/store"
)

// Outcome identifies the terminal result of a handled decision. Each
// outcome maps to exactly one human-readable acknowledgment.
type Outcome string

const (
	OutcomePublished        Outcome = "published"
	OutcomePublishFailed    Outcome = "publish_failed"
	OutcomeRejected         Outcome = "rejected"
	OutcomeAlreadyProcessed Outcome = "already_processed"
)

// Message returns the acknowledgment shown to the reviewer for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomePublished:
		return "✅ Tweet posted successfully!"
	case OutcomePublishFailed:
		return "❌ Failed to post tweet."
	case OutcomeRejected:
		return "❌ Tweet rejected."
	case OutcomeAlreadyProcessed:
		return "⚠️ Tweet not found or already processed."
	}
	return ""
}

// ApprovalWorkflow orchestrates the draft lifecycle: submission for review,
// decision handling and publish-or-discard.
//
// State machine per pending approval:
//
//	Pending --approve--> Approved --publish ok-->   Published
//	                              --publish fail--> PublishFailed (no auto-retry)
//	Pending --reject--> Rejected
//	Pending --timeout--> Expired
//
// All transitions out of Pending are mutually exclusive and single-fire,
// enforced by the store's atomic Resolve.
type ApprovalWorkflow struct {
	store     store.ApprovalStore
	notifier  ApprovalNotifier
	publisher Publisher
	logger    *zap.Logger
	draining  atomic.Bool
}

// NewApprovalWorkflow creates a new ApprovalWorkflow.
func NewApprovalWorkflow(st store.ApprovalStore, notifier ApprovalNotifier, publisher Publisher, logger *zap.Logger) *ApprovalWorkflow {
	return &ApprovalWorkflow{
		store:     st,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger.Named("ApprovalWorkflow"),
	}
}

// SubmitForApproval registers the draft and sends an approval request to
// the reviewer. When the notification cannot be delivered the error is
// propagated and the created record stays Pending until it expires.
func (w *ApprovalWorkflow) SubmitForApproval(ctx context.Context, content string) (string, error) {
	if w.draining.Load() {
		return "", model.ErrDraining
	}

	id, err := w.store.Create(ctx, content)
	if err != nil {
		return "", fmt.Errorf("failed to create pending approval: %w", err)
	}

	if err := w.notifier.SendApprovalRequest(ctx, id, content); err != nil {
		w.logger.Error("Failed to deliver approval request", zap.String("id", id), zap.Error(err))
		return "", fmt.Errorf("failed to deliver approval request for %s: %w", id, err)
	}

	approvalsSubmitted.Inc()
	w.logger.Info("Draft submitted for approval", zap.String("id", id))
	return id, nil
}

// HandleDecision resolves the record and publishes or discards the draft.
// A duplicate decision for the same id yields OutcomeAlreadyProcessed and
// has no side effects. External failures are mapped to outcomes, never
// propagated as faults.
func (w *ApprovalWorkflow) HandleDecision(ctx context.Context, decision model.Decision) Outcome {
	log := w.logger.With(
		zap.String("id", decision.ID),
		zap.String("action", string(decision.Action)),
	)

	rec, err := w.store.Resolve(ctx, decision.ID, decision.Action)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrAlreadyProcessed) {
			log.Info("Duplicate or unknown decision ignored")
		} else {
			log.Error("Failed to resolve pending approval", zap.Error(err))
		}
		return w.done(OutcomeAlreadyProcessed)
	}

	switch rec.Status {
	case model.StatusApproved:
		postID, err := w.publisher.Publish(ctx, rec.Content)
		if err != nil {
			// No automatic retry: publishing is not idempotent and a retry
			// risks duplicate posts. The record stays Approved; a manual
			// re-submission is required.
			log.Error("Publish failed", zap.Error(err))
			return w.done(OutcomePublishFailed)
		}
		log.Info("Draft published", zap.String("post_id", postID))
		return w.done(OutcomePublished)
	default:
		log.Info("Draft discarded")
		return w.done(OutcomeRejected)
	}
}

// Drain stops new submissions while letting in-flight decisions resolve.
func (w *ApprovalWorkflow) Drain() {
	w.draining.Store(true)
	w.logger.Info("Workflow draining, new submissions rejected")
}

func (w *ApprovalWorkflow) done(outcome Outcome) Outcome {
	decisionsTotal.WithLabelValues(string(outcome)).Inc()
	return outcome
}
