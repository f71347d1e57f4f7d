package telegram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superteam-bot/internal/model"
	"superteam-bot/internal/telegram"
)

func TestParseDecision_Approve(t *testing.T) {
	decision, err := telegram.ParseDecision("approve_abc-123")
	require.NoError(t, err)
	assert.Equal(t, model.Decision{ID: "abc-123", Action: model.ActionApprove}, decision)
}

func TestParseDecision_Reject(t *testing.T) {
	decision, err := telegram.ParseDecision("reject_abc-123")
	require.NoError(t, err)
	assert.Equal(t, model.Decision{ID: "abc-123", Action: model.ActionReject}, decision)
}

func TestParseDecision_RoundTrip(t *testing.T) {
	for _, action := range []model.Action{model.ActionApprove, model.ActionReject} {
		data := telegram.ApprovalCallbackData(action, "id-42")
		decision, err := telegram.ParseDecision(data)
		require.NoError(t, err)
		assert.Equal(t, model.Decision{ID: "id-42", Action: action}, decision)
	}
}

func TestParseDecision_Invalid(t *testing.T) {
	for _, data := range []string{"", "approve_", "reject_", "publish_abc", "approveabc"} {
		_, err := telegram.ParseDecision(data)
		assert.Error(t, err, "data %q must not parse", data)
	}
}
