package knowledge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"superteam-bot/internal/knowledge"
	"superteam-bot/internal/mocks"
	"superteam-bot/internal/model"
)

const threshold = 0.3

var corpus = []model.KnowledgeEntry{
	{Question: "What is Superteam?", Answer: "A community."},
	{Question: "How do I join?", Answer: "Apply through the website."},
}

func TestService_Answer_KnowledgeBaseHit(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	svc := knowledge.NewService(corpus, threshold, ai, zap.NewNop())

	reply := svc.Answer(context.Background(), "What is Superteam?")
	assert.Equal(t, "A community.", reply)

	// The generator must not be consulted on a hit.
	ai.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
}

func TestService_Answer_BelowThresholdFallsThroughToGenerator(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	svc := knowledge.NewService(corpus, threshold, ai, zap.NewNop())

	ai.On("GenerateText", mock.Anything, "asdkjasd").
		Return("Freeform AI reply.", nil).Once()

	reply := svc.Answer(context.Background(), "asdkjasd")
	assert.Equal(t, "Freeform AI reply.", reply)
	ai.AssertExpectations(t)
}

func TestService_Answer_GenerationFailureReturnsFallback(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	svc := knowledge.NewService(corpus, threshold, ai, zap.NewNop())

	ai.On("GenerateText", mock.Anything, "asdkjasd").
		Return("", errors.New("model unavailable")).Once()

	reply := svc.Answer(context.Background(), "asdkjasd")
	assert.Equal(t, "Error fetching AI response.", reply)
}

func TestService_Answer_EmptyGenerationReturnsFallback(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	svc := knowledge.NewService(corpus, threshold, ai, zap.NewNop())

	ai.On("GenerateText", mock.Anything, "asdkjasd").Return("   ", nil).Once()

	reply := svc.Answer(context.Background(), "asdkjasd")
	assert.Equal(t, "Sorry, I couldn't generate a response.", reply)
}

func TestBestMatch_ScoresAroundThreshold(t *testing.T) {
	match, ok := knowledge.BestMatch("What is Superteam?", corpus)
	require.True(t, ok)
	assert.Equal(t, "What is Superteam?", match.Entry.Question)
	assert.GreaterOrEqual(t, match.Score, threshold)

	match, ok = knowledge.BestMatch("asdkjasd", corpus)
	require.True(t, ok)
	assert.Less(t, match.Score, threshold)
}

func TestBestMatch_EmptyCorpus(t *testing.T) {
	_, ok := knowledge.BestMatch("anything", nil)
	assert.False(t, ok)
}
