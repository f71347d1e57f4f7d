package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"superteam-bot/internal/model"
)

// Compile-time check to ensure MemoryStore implements ApprovalStore.
var _ ApprovalStore = (*MemoryStore)(nil)

// MemoryStore is a mutex-guarded in-memory ApprovalStore. Records keep
// their terminal status until the next Expire sweep, so a duplicate
// decision is reported as already processed rather than unknown. Contents
// are lost on process restart; use the Redis store when that matters.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*model.PendingApproval
	logger  *zap.Logger
	now     func() time.Time
}

// NewMemoryStore creates a new in-memory ApprovalStore.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*model.PendingApproval),
		logger:  logger.Named("MemoryStore"),
		now:     time.Now,
	}
}

// Create inserts a new Pending record and returns its id.
func (s *MemoryStore) Create(_ context.Context, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A uuid collision is not a practical concern, but a live record must
	// never be silently overwritten.
	id := uuid.NewString()
	for {
		if _, exists := s.records[id]; !exists {
			break
		}
		id = uuid.NewString()
	}

	s.records[id] = &model.PendingApproval{
		ID:        id,
		Content:   content,
		Status:    model.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	s.logger.Debug("Pending approval created", zap.String("id", id))
	return id, nil
}

// Resolve atomically transitions the record out of Pending.
func (s *MemoryStore) Resolve(_ context.Context, id string, action model.Action) (*model.PendingApproval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if rec.Status != model.StatusPending {
		return nil, model.ErrAlreadyProcessed
	}

	switch action {
	case model.ActionApprove:
		rec.Status = model.StatusApproved
	case model.ActionReject:
		rec.Status = model.StatusRejected
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}

	out := *rec
	return &out, nil
}

// Expire marks Pending records older than maxAge as Expired and drops
// terminal records older than maxAge, bounding memory growth.
func (s *MemoryStore) Expire(_ context.Context, maxAge time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxAge)
	expired := 0
	for id, rec := range s.records {
		if !rec.CreatedAt.Before(cutoff) {
			continue
		}
		if rec.Status == model.StatusPending {
			rec.Status = model.StatusExpired
			expired++
			continue
		}
		delete(s.records, id)
	}

	if expired > 0 {
		s.logger.Info("Expired pending approvals", zap.Int("count", expired))
	}
	return expired, nil
}

// Len returns the number of tracked records, for diagnostics.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
