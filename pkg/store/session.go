package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when no checkout session exists for a user,
// either because none was started or because it expired.
var ErrSessionNotFound = errors.New("checkout session not found")

// CheckoutSession is the transient state between plan selection and payment.
// It lives in Redis under a per-user key with a TTL, so abandoning the flow
// needs no cleanup.
type CheckoutSession struct {
	UserID       uuid.UUID `json:"user_id"`
	PlanID       uuid.UUID `json:"plan_id"`
	ServiceEmail string    `json:"service_email"`
	ServiceUser  string    `json:"service_user"`
	Renewal      bool      `json:"renewal"`
	PriorSubID   uuid.UUID `json:"prior_sub_id,omitempty"`
	StartedAt    time.Time `json:"started_at"`
}

type CheckoutStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCheckoutStore(rdb *redis.Client, ttl time.Duration) *CheckoutStore {
	return &CheckoutStore{rdb: rdb, ttl: ttl}
}

func (s *CheckoutStore) key(userID uuid.UUID) string {
	return fmt.Sprintf("checkout:%s", userID)
}

func (s *CheckoutStore) Save(ctx context.Context, session *CheckoutSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(session.UserID), payload, s.ttl).Err()
}

func (s *CheckoutStore) Get(ctx context.Context, userID uuid.UUID) (*CheckoutSession, error) {
	payload, err := s.rdb.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var session CheckoutSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *CheckoutStore) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.rdb.Del(ctx, s.key(userID)).Err()
}
