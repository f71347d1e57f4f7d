package model

import (
	"errors"
	"time"
)

// ApprovalStatus defines the lifecycle state of a pending approval record.
// A transition out of StatusPending is terminal: no record re-enters Pending.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
	StatusExpired  ApprovalStatus = "expired"
)

// PendingApproval is a draft awaiting a human decision. Its content is
// immutable once created; only Status changes, exactly once.
type PendingApproval struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Status    ApprovalStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// Action is the decision a human can take on a pending approval.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Decision references a pending approval by id together with the action
// taken. It is a lookup key only; the store remains the sole owner of the
// record.
type Decision struct {
	ID     string
	Action Action
}

var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("pending approval not found")
	// ErrAlreadyProcessed is returned when the record has already left the
	// Pending state. Callers must treat it as a safe no-op, never as a
	// reason to re-trigger a publish.
	ErrAlreadyProcessed = errors.New("pending approval already processed")
	// ErrDraining is returned for new submissions while the process is
	// shutting down.
	ErrDraining = errors.New("workflow is draining, new submissions are rejected")
)
