package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
)

// RevokedTokenRepository records logged-out tokens in Redis until they expire
// on their own. Keys carry a TTL equal to the token's remaining lifetime, so
// the set never grows past the live-token horizon.
type RevokedTokenRepository struct {
	client *redis.Client
}

// NewRevokedTokenRepository creates a new repository instance
func NewRevokedTokenRepository(client *redis.Client) *RevokedTokenRepository {
	return &RevokedTokenRepository{client: client}
}

func revokedTokenKey(tokenString string) string {
	return fmt.Sprintf("revoked_token:%s", tokenString)
}

// Revoke records a token as logged out for the given TTL.
func (r *RevokedTokenRepository) Revoke(ctx context.Context, tokenString string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to record.
		return nil
	}

	key := revokedTokenKey(tokenString)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("token revoked",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token has been logged out.
func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, tokenString string) (bool, error) {
	key := revokedTokenKey(tokenString)

	_, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to check revoked token", "key", key, "error", err)
		return false, err
	}
	return true, nil
}
