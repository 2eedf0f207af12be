package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"nepolianStore/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

// An abandoned checkout simply expires; there is no cancellation path once
// submission begins.
const checkoutSessionTTL = time.Hour

type CheckoutSessionRepository struct {
	client *redis.Client
}

func NewCheckoutSessionRepository(client *redis.Client) *CheckoutSessionRepository {
	return &CheckoutSessionRepository{
		client: client,
	}
}

// Get returns the stored session, or a fresh idle one when none exists.
func (r *CheckoutSessionRepository) Get(ctx context.Context, userID string) (domain.CheckoutSession, error) {
	key := fmt.Sprintf("checkout:user:%s", userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.NewCheckoutSession(userID), nil
		}
		return domain.CheckoutSession{}, fmt.Errorf("failed to get checkout session from Redis: %w", err)
	}

	var session domain.CheckoutSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return domain.CheckoutSession{}, fmt.Errorf("failed to unmarshal checkout session: %w", err)
	}

	return session, nil
}

func (r *CheckoutSessionRepository) Save(ctx context.Context, session domain.CheckoutSession) error {
	key := fmt.Sprintf("checkout:user:%s", session.UserID)

	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, checkoutSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store checkout session in Redis: %w", err)
	}

	return nil
}

func (r *CheckoutSessionRepository) Delete(ctx context.Context, userID string) error {
	key := fmt.Sprintf("checkout:user:%s", userID)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete checkout session in Redis: %w", err)
	}

	return nil
}
