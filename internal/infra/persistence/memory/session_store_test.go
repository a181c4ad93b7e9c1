package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestStore() (repository.SessionStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}

	return NewSessionStoreWithClock(clock.Now), clock
}

func TestSessionStore_PutAndValidate(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()

	require.NoError(t, store.Put(ctx, "alice", entity.NewRefreshTokenRecord("r1", clock.now.Add(time.Hour))))

	record, err := store.ValidateAndGet(ctx, "alice", "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", record.Token)
	assert.Equal(t, clock.now.Add(time.Hour), record.Expires)
}

func TestSessionStore_ValidateAndGetFailures(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()
	require.NoError(t, store.Put(ctx, "alice", entity.NewRefreshTokenRecord("r1", clock.now.Add(time.Minute))))

	_, err := store.ValidateAndGet(ctx, "bob", "r1")
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound), "unknown user")

	_, err = store.ValidateAndGet(ctx, "alice", "r2")
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound), "wrong token")

	_, err = store.ValidateAndGet(ctx, "alice", "r1x")
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound), "token with suffix")

	clock.Advance(time.Minute)
	_, err = store.ValidateAndGet(ctx, "alice", "r1")
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound), "expiry is strict")
}

func TestSessionStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()

	require.NoError(t, store.Put(ctx, "alice", entity.NewRefreshTokenRecord("r1", clock.now.Add(time.Hour))))
	require.NoError(t, store.Put(ctx, "alice", entity.NewRefreshTokenRecord("r2", clock.now.Add(time.Hour))))

	_, err := store.ValidateAndGet(ctx, "alice", "r1")
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

	_, err = store.ValidateAndGet(ctx, "alice", "r2")
	assert.NoError(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionStore_PutNormalizesToUTC(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()

	local := clock.now.Add(time.Hour).In(time.FixedZone("UTC-5", -5*60*60))
	require.NoError(t, store.Put(ctx, "alice", entity.RefreshTokenRecord{Token: "r1", Expires: local}))

	record, err := store.ValidateAndGet(ctx, "alice", "r1")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, record.Expires.Location())
}

func TestSessionStore_Revoke(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()
	require.NoError(t, store.Put(ctx, "alice", entity.NewRefreshTokenRecord("r1", clock.now.Add(time.Hour))))

	ok, err := store.Revoke(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.ValidateAndGet(ctx, "alice", "r1")
	require.NoError(t, err, "mismatched revoke leaves the record")

	ok, err = store.Revoke(ctx, "alice", "r1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Revoke(ctx, "alice", "r1")
	require.NoError(t, err)
	assert.False(t, ok, "second revoke finds nothing")

	_, err = store.ValidateAndGet(ctx, "alice", "r1")
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestSessionStore_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()

	require.NoError(t, store.Put(ctx, "alice", entity.NewRefreshTokenRecord("a", clock.now.Add(time.Minute))))
	require.NoError(t, store.Put(ctx, "bob", entity.NewRefreshTokenRecord("b", clock.now.Add(time.Hour))))

	clock.Advance(2 * time.Minute)

	removed, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = store.ValidateAndGet(ctx, "bob", "b")
	assert.NoError(t, err)
}

func TestSessionStore_ConcurrentRevokeHasOneWinner(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()
	require.NoError(t, store.Put(ctx, "alice", entity.NewRefreshTokenRecord("r1", clock.now.Add(time.Hour))))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 64 {
		wg.Go(func() {
			ok, err := store.Revoke(ctx, "alice", "r1")
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestSessionStore_ConcurrentUsers(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()
	expires := clock.now.Add(time.Hour)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Go(func() {
			username := fmt.Sprintf("user-%d", i)
			token := fmt.Sprintf("token-%d", i)

			assert.NoError(t, store.Put(ctx, username, entity.NewRefreshTokenRecord(token, expires)))
			_, err := store.ValidateAndGet(ctx, username, token)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, count)
}
