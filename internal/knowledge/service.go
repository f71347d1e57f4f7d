package knowledge

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"superteam-bot/internal/model"
)

// Fallback replies when the AI generator cannot produce an answer. Every
// generation failure is recovered locally with one of these, never
// propagated as a crash.
const (
	fallbackEmptyResponse    = "Sorry, I couldn't generate a response."
	fallbackGenerationFailed = "Error fetching AI response."
)

// Generator produces a freeform reply for a prompt. Satisfied by
// service.AIClient.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service answers user queries from the knowledge base, falling back to the
// generator when no entry clears the similarity threshold.
type Service struct {
	entries   []model.KnowledgeEntry
	threshold float64
	generator Generator
	logger    *zap.Logger
}

// NewService creates a new knowledge Service.
func NewService(entries []model.KnowledgeEntry, threshold float64, generator Generator, logger *zap.Logger) *Service {
	return &Service{
		entries:   entries,
		threshold: threshold,
		generator: generator,
		logger:    logger.Named("Knowledge"),
	}
}

// Answer returns the stored answer verbatim when the closest question
// clears the threshold, otherwise a freeform AI reply.
func (s *Service) Answer(ctx context.Context, query string) string {
	if match, ok := BestMatch(query, s.entries); ok && match.Score >= s.threshold {
		s.logger.Debug("Knowledge base hit",
			zap.Float64("score", match.Score),
			zap.String("question", match.Entry.Question),
		)
		return match.Entry.Answer
	}

	reply, err := s.generator.GenerateText(ctx, query)
	if err != nil {
		s.logger.Warn("AI fallback generation failed", zap.Error(err))
		return fallbackGenerationFailed
	}
	if strings.TrimSpace(reply) == "" {
		return fallbackEmptyResponse
	}
	return reply
}
