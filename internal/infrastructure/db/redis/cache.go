package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/careermap/careermap-api/internal/core/domain"
)

const (
	publicListingKey = "cache:companies:public"
	publicListingTTL = time.Minute
)

// PublicListingCache caches the anonymous public-companies listing that backs
// the landing-page map. Misses and Redis errors are both treated as a miss;
// the cache is never authoritative.
type PublicListingCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewPublicListingCache creates a cache wrapping the given Redis client.
func NewPublicListingCache(client *redis.Client, log zerolog.Logger) *PublicListingCache {
	return &PublicListingCache{client: client, log: log}
}

// GetPublic returns the cached listing and whether it was present.
func (c *PublicListingCache) GetPublic(ctx context.Context) ([]domain.Company, bool) {
	raw, err := c.client.Get(ctx, publicListingKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("public listing cache read failed")
		}
		return nil, false
	}

	var companies []domain.Company
	if err := json.Unmarshal(raw, &companies); err != nil {
		c.log.Warn().Err(err).Msg("public listing cache corrupt, ignoring")
		return nil, false
	}
	return companies, true
}

// SetPublic stores the listing with a short TTL.
func (c *PublicListingCache) SetPublic(ctx context.Context, companies []domain.Company) {
	raw, err := json.Marshal(companies)
	if err != nil {
		c.log.Warn().Err(err).Msg("public listing cache encode failed")
		return
	}
	if err := c.client.Set(ctx, publicListingKey, raw, publicListingTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("public listing cache write failed")
	}
}

// Invalidate drops the cached listing after any company write.
func (c *PublicListingCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, publicListingKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("public listing cache invalidation failed")
	}
}
