package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"superteam-bot/internal/model"
)

func TestMemoryStore_Create_UniqueIDs(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id, err := s.Create(ctx, "draft")
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "id %s returned twice", id)
		seen[id] = struct{}{}
	}
	assert.Equal(t, n, s.Len())
}

func TestMemoryStore_Resolve_Approve(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	id, err := s.Create(ctx, "post this")
	require.NoError(t, err)

	rec, err := s.Resolve(ctx, id, model.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "post this", rec.Content)
	assert.Equal(t, model.StatusApproved, rec.Status)
}

func TestMemoryStore_Resolve_Reject(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	id, err := s.Create(ctx, "drop this")
	require.NoError(t, err)

	rec, err := s.Resolve(ctx, id, model.ActionReject)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, rec.Status)
}

func TestMemoryStore_Resolve_UnknownID(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())

	rec, err := s.Resolve(context.Background(), "no-such-id", model.ActionApprove)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMemoryStore_Resolve_ConcurrentSingleWinner(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	id, err := s.Create(ctx, "only once")
	require.NoError(t, err)

	const resolvers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	start := make(chan struct{})

	for i := 0; i < resolvers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := s.Resolve(ctx, id, model.ActionApprove)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else {
				assert.ErrorIs(t, err, model.ErrAlreadyProcessed)
				conflicts++
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, 1, wins, "exactly one resolver must win")
	assert.Equal(t, resolvers-1, conflicts)
}

func TestMemoryStore_Resolve_AfterResolveIsAlreadyProcessed(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	id, err := s.Create(ctx, "x")
	require.NoError(t, err)

	_, err = s.Resolve(ctx, id, model.ActionApprove)
	require.NoError(t, err)

	_, err = s.Resolve(ctx, id, model.ActionApprove)
	assert.ErrorIs(t, err, model.ErrAlreadyProcessed)

	_, err = s.Resolve(ctx, id, model.ActionReject)
	assert.ErrorIs(t, err, model.ErrAlreadyProcessed)
}

func TestMemoryStore_Expire(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }

	oldID, err := s.Create(ctx, "stale")
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(2 * time.Hour) }
	freshID, err := s.Create(ctx, "fresh")
	require.NoError(t, err)

	expired, err := s.Expire(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	// The stale record is excluded from resolution.
	_, err = s.Resolve(ctx, oldID, model.ActionApprove)
	assert.ErrorIs(t, err, model.ErrAlreadyProcessed)

	// The fresh record is untouched.
	rec, err := s.Resolve(ctx, freshID, model.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, rec.Status)
}

func TestMemoryStore_Expire_DropsTerminalRecords(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }

	id, err := s.Create(ctx, "x")
	require.NoError(t, err)
	_, err = s.Resolve(ctx, id, model.ActionReject)
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = s.Expire(ctx, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Len())
	_, err = s.Resolve(ctx, id, model.ActionApprove)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
