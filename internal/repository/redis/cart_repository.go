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

// Carts survive sign-outs and restarts; a month of inactivity lets one lapse.
const cartTTL = 30 * 24 * time.Hour

type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{
		client: client,
	}
}

// Get returns the stored cart; a missing key means an empty cart, not an
// error.
func (r *CartRepository) Get(ctx context.Context, userID string) (domain.Cart, error) {
	key := fmt.Sprintf("cart:user:%s", userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("failed to get cart from Redis: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return cart, nil
}

func (r *CartRepository) Save(ctx context.Context, userID string, cart domain.Cart) error {
	key := fmt.Sprintf("cart:user:%s", userID)

	jsonData, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart in Redis: %w", err)
	}

	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	key := fmt.Sprintf("cart:user:%s", userID)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear cart in Redis: %w", err)
	}

	return nil
}
