package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"superteam-bot/internal/mocks"
	"superteam-bot/internal/service"
)

func TestDraftService_GenerateTweet_AppendsMentions(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	followers := mocks.NewMockFollowerSource(t)
	drafts := service.NewDraftService(ai, followers, zap.NewNop())

	ai.On("GenerateText", mock.Anything, "solana hackathon").
		Return("Join us at the hackathon!", nil).Once()
	followers.On("Followers", mock.Anything, 3).
		Return([]string{"alice", "bob", "carol"}, nil).Once()

	tweet, err := drafts.GenerateTweet(context.Background(), "solana hackathon")
	require.NoError(t, err)
	assert.Equal(t, "Join us at the hackathon!\n\n@alice @bob @carol", tweet)
}

func TestDraftService_GenerateTweet_FollowerLookupFailureOnlyCostsMentions(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	followers := mocks.NewMockFollowerSource(t)
	drafts := service.NewDraftService(ai, followers, zap.NewNop())

	ai.On("GenerateText", mock.Anything, "gm").Return("gm world", nil).Once()
	followers.On("Followers", mock.Anything, 3).
		Return(nil, errors.New("rate limited")).Once()

	tweet, err := drafts.GenerateTweet(context.Background(), "gm")
	require.NoError(t, err)
	assert.Equal(t, "gm world", tweet)
}

func TestDraftService_GenerateTweet_GenerationError(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	drafts := service.NewDraftService(ai, nil, zap.NewNop())

	ai.On("GenerateText", mock.Anything, "prompt").
		Return("", service.ErrAIGenerationFailed).Once()

	_, err := drafts.GenerateTweet(context.Background(), "prompt")
	assert.ErrorIs(t, err, service.ErrAIGenerationFailed)
}

func TestDraftService_EnhanceTweet_WrapsDraftInPrompt(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	drafts := service.NewDraftService(ai, nil, zap.NewNop())

	const draft = "we are live"
	ai.On("GenerateText", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, draft) && strings.Contains(prompt, "better engagement")
	})).Return("We are LIVE! 🚀", nil).Once()

	tweet, err := drafts.EnhanceTweet(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "We are LIVE! 🚀", tweet)
}
