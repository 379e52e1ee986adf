package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis test: REDIS_URL not set")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Skipping Redis test: %v", err)
	}
	return rdb
}

func TestCheckoutStoreRoundTrip(t *testing.T) {
	rdb := testClient(t)
	store := NewCheckoutStore(rdb, time.Minute)
	ctx := context.Background()

	session := &CheckoutSession{
		UserID:       uuid.New(),
		PlanID:       uuid.New(),
		ServiceEmail: "cliente@example.com",
		ServiceUser:  "cliente01",
		StartedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Save(ctx, session))
	defer store.Clear(ctx, session.UserID)

	got, err := store.Get(ctx, session.UserID)
	require.NoError(t, err)
	assert.Equal(t, session.PlanID, got.PlanID)
	assert.Equal(t, session.ServiceEmail, got.ServiceEmail)
	assert.False(t, got.Renewal)
}

func TestCheckoutStoreMissingSession(t *testing.T) {
	rdb := testClient(t)
	store := NewCheckoutStore(rdb, time.Minute)

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckoutStoreClear(t *testing.T) {
	rdb := testClient(t)
	store := NewCheckoutStore(rdb, time.Minute)
	ctx := context.Background()

	session := &CheckoutSession{UserID: uuid.New(), PlanID: uuid.New(), StartedAt: time.Now()}
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Clear(ctx, session.UserID))

	_, err := store.Get(ctx, session.UserID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckoutStoreExpiry(t *testing.T) {
	rdb := testClient(t)
	store := NewCheckoutStore(rdb, 50*time.Millisecond)
	ctx := context.Background()

	session := &CheckoutSession{UserID: uuid.New(), PlanID: uuid.New(), StartedAt: time.Now()}
	require.NoError(t, store.Save(ctx, session))

	time.Sleep(100 * time.Millisecond)

	_, err := store.Get(ctx, session.UserID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
