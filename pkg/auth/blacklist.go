package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/jordanlanch/salesagent/pkg/cache"
)

const revokedPrefix = "jwt:revoked:"

// Revocations remembers logged-out tokens in Redis until they would have
// expired anyway.
type Revocations struct {
	cache *cache.Client
}

func NewRevocations(c *cache.Client) *Revocations {
	return &Revocations{cache: c}
}

// Revoke marks token as unusable for ttl. A non-positive ttl means the token
// is already dead and nothing is stored.
func (r *Revocations) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.cache.Redis.Set(ctx, revokedKey(token), 1, ttl).Err()
}

func (r *Revocations) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.cache.Redis.Exists(ctx, revokedKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Keys hold a digest so raw tokens never sit in Redis.
func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedPrefix + hex.EncodeToString(sum[:])
}
