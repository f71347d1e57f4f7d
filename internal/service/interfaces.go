package service

import "context"

// Publisher commits approved content to the target platform and returns
// the id of the created post. Publishing is treated as non-idempotent:
// repeated calls with the same content may create duplicate posts, which
// is why a failed publish is never retried automatically.
type Publisher interface {
	Publish(ctx context.Context, content string) (string, error)
}

// ApprovalNotifier delivers an approval request for a draft to a human
// reviewer. The decision comes back asynchronously as a model.Decision
// through the workflow.
type ApprovalNotifier interface {
	SendApprovalRequest(ctx context.Context, id, content string) error
}

// FollowerSource lists follower usernames of the publishing account, used
// for engagement mentions in generated drafts.
type FollowerSource interface {
	Followers(ctx context.Context, limit int) ([]string, error)
}
