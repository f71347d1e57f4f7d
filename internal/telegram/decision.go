package telegram

import (
	"fmt"
	"strings"

	"superteam-bot/internal/model"
)

// Inline keyboard callback payload format: "approve_<id>" / "reject_<id>".
// The stringly-typed payload is confined to this boundary; everything past
// ParseDecision works with model.Decision.
const (
	callbackApprovePrefix = "approve_"
	callbackRejectPrefix  = "reject_"
)

// ApprovalCallbackData encodes the callback payload for an action on a
// pending approval id.
func ApprovalCallbackData(action model.Action, id string) string {
	if action == model.ActionReject {
		return callbackRejectPrefix + id
	}
	return callbackApprovePrefix + id
}

// ParseDecision parses inline keyboard callback data into a Decision.
func ParseDecision(data string) (model.Decision, error) {
	switch {
	case strings.HasPrefix(data, callbackApprovePrefix):
		if id := strings.TrimPrefix(data, callbackApprovePrefix); id != "" {
			return model.Decision{ID: id, Action: model.ActionApprove}, nil
		}
	case strings.HasPrefix(data, callbackRejectPrefix):
		if id := strings.TrimPrefix(data, callbackRejectPrefix); id != "" {
			return model.Decision{ID: id, Action: model.ActionReject}, nil
		}
	}
	return model.Decision{}, fmt.Errorf("unrecognized callback data %q", data)
}
