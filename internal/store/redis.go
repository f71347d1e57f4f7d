package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"superteam-bot/internal/model"
)

// Compile-time check to ensure RedisStore implements ApprovalStore.
var _ ApprovalStore = (*RedisStore)(nil)

const pendingKeyPrefix = "pending_approval:"

// RedisStore keeps pending approvals in Redis so they survive process
// restarts. Each record is stored as a JSON value with TTL = maxAge, which
// bounds the set server-side. Resolve uses GETDEL, so exactly one of any
// number of concurrent resolvers wins; the losers observe
// model.ErrNotFound, indistinguishable here from an unknown or expired id.
type RedisStore struct {
	client *redis.Client
	maxAge time.Duration
	logger *zap.Logger
}

// NewRedisStore creates a new Redis-backed ApprovalStore.
func NewRedisStore(client *redis.Client, maxAge time.Duration, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		maxAge: maxAge,
		logger: logger.Named("RedisStore"),
	}
}

// Create inserts a new Pending record with a TTL and returns its id.
func (s *RedisStore) Create(ctx context.Context, content string) (string, error) {
	for {
		id := uuid.NewString()
		rec := model.PendingApproval{
			ID:        id,
			Content:   content,
			Status:    model.StatusPending,
			CreatedAt: time.Now().UTC(),
		}
		body, err := json.Marshal(rec)
		if err != nil {
			return "", fmt.Errorf("failed to marshal pending approval: %w", err)
		}

		// SETNX guards against overwriting a live record on an id collision.
		ok, err := s.client.SetNX(ctx, pendingKeyPrefix+id, body, s.maxAge).Result()
		if err != nil {
			return "", fmt.Errorf("failed to store pending approval: %w", err)
		}
		if ok {
			s.logger.Debug("Pending approval created", zap.String("id", id))
			return id, nil
		}
	}
}

// Resolve atomically removes the record and returns it with the terminal
// status applied.
func (s *RedisStore) Resolve(ctx context.Context, id string, action model.Action) (*model.PendingApproval, error) {
	val, err := s.client.GetDel(ctx, pendingKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pending approval %s: %w", id, err)
	}

	var rec model.PendingApproval
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending approval %s: %w", id, err)
	}

	switch action {
	case model.ActionApprove:
		rec.Status = model.StatusApproved
	case model.ActionReject:
		rec.Status = model.StatusRejected
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}
	return &rec, nil
}

// Expire is a no-op for the Redis store: records carry a TTL set at Create
// and Redis expires them server-side.
func (s *RedisStore) Expire(_ context.Context, _ time.Duration) (int, error) {
	return 0, nil
}
