package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// maxMentions bounds how many follower mentions are appended to a draft.
const maxMentions = 3

// DraftService produces tweet drafts with the AI client, appending a few
// follower mentions for engagement when available.
type DraftService struct {
	ai        AIClient
	followers FollowerSource
	logger    *zap.Logger
}

// NewDraftService creates a new DraftService. followers may be nil when no
// Twitter credentials are configured; drafts are then produced without
// mentions.
func NewDraftService(ai AIClient, followers FollowerSource, logger *zap.Logger) *DraftService {
	return &DraftService{
		ai:        ai,
		followers: followers,
		logger:    logger.Named("DraftService"),
	}
}

// GenerateTweet drafts a new tweet for the given prompt.
func (s *DraftService) GenerateTweet(ctx context.Context, prompt string) (string, error) {
	text, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	return s.withMentions(ctx, text), nil
}

// EnhanceTweet rewrites an existing draft for better engagement.
func (s *DraftService) EnhanceTweet(ctx context.Context, draft string) (string, error) {
	prompt := fmt.Sprintf("Improve this tweet for better engagement: %q", draft)
	text, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	return s.withMentions(ctx, text), nil
}

// withMentions appends up to maxMentions follower mentions. Follower lookup
// failures only cost the mentions, never the draft.
func (s *DraftService) withMentions(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if s.followers == nil {
		return text
	}

	followers, err := s.followers.Followers(ctx, maxMentions)
	if err != nil {
		s.logger.Warn("Failed to fetch followers for mentions", zap.Error(err))
		return text
	}
	if len(followers) == 0 {
		return text
	}

	mentions := make([]string, 0, len(followers))
	for _, username := range followers {
		mentions = append(mentions, "@"+username)
	}
	return text + "\n\n" + strings.Join(mentions, " ")
}
