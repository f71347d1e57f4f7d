package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"superteam-bot/internal/model"
	"superteam-bot/internal/store"
)

func newTestRedisStore(t *testing.T, maxAge time.Duration) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return store.NewRedisStore(client, maxAge, zap.NewNop()), mr
}

func TestRedisStore_CreateAndResolve(t *testing.T) {
	s, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	id, err := s.Create(ctx, "post this")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := s.Resolve(ctx, id, model.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "post this", rec.Content)
	assert.Equal(t, model.StatusApproved, rec.Status)

	// The record is consumed: a duplicate decision resolves to not found.
	_, err = s.Resolve(ctx, id, model.ActionApprove)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRedisStore_Resolve_UnknownID(t *testing.T) {
	s, _ := newTestRedisStore(t, time.Hour)

	_, err := s.Resolve(context.Background(), "no-such-id", model.ActionApprove)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRedisStore_Resolve_ConcurrentSingleWinner(t *testing.T) {
	s, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	id, err := s.Create(ctx, "only once")
	require.NoError(t, err)

	const resolvers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	start := make(chan struct{})

	for i := 0; i < resolvers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := s.Resolve(ctx, id, model.ActionApprove); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, model.ErrNotFound)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, 1, wins, "exactly one resolver must win")
}

func TestRedisStore_ExpiresViaTTL(t *testing.T) {
	s, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	id, err := s.Create(ctx, "abandoned")
	require.NoError(t, err)

	mr.FastForward(time.Hour + time.Minute)

	_, err = s.Resolve(ctx, id, model.ActionApprove)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
