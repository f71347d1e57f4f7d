package store

import (
	"context"
	"time"

	"superteam-bot/internal/model"
)

// ApprovalStore holds pending approval records keyed by an opaque id.
// Implementations must make Resolve an atomic check-and-set: for a given id
// exactly one caller observes a successful transition out of Pending, even
// when decisions for the same id are dispatched concurrently.
type ApprovalStore interface {
	// Create inserts a new Pending record for the content and returns its
	// freshly allocated id. Ids never collide with a live record.
	Create(ctx context.Context, content string) (string, error)

	// Resolve atomically transitions the record out of Pending according to
	// the action and returns it. It returns model.ErrNotFound when no record
	// exists for the id and model.ErrAlreadyProcessed when the record has
	// already been resolved or expired.
	Resolve(ctx context.Context, id string, action model.Action) (*model.PendingApproval, error)

	// Expire marks Pending records older than maxAge as Expired so that
	// abandoned drafts do not accumulate forever. It returns how many
	// records were expired.
	Expire(ctx context.Context, maxAge time.Duration) (int, error)
}
