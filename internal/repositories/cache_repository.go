package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"townkit/internal/models"
)

// CacheRepository fronts permit-requirement reads with redis. A nil client
// disables caching entirely; callers never need to check availability.
type CacheRepository struct {
	rdb *redis.Client
}

func NewCacheRepository(rdb *redis.Client) *CacheRepository {
	return &CacheRepository{rdb: rdb}
}

const requirementTTL = 24 * time.Hour

func requirementKey(citySlug, projectSlug string) string {
	return "requirements:" + citySlug + ":" + projectSlug
}

func (r *CacheRepository) GetRequirement(ctx context.Context, citySlug, projectSlug string) (*models.PermitRequirement, error) {
	if r.rdb == nil {
		return nil, nil
	}

	data, err := r.rdb.Get(ctx, requirementKey(citySlug, projectSlug)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var requirement models.PermitRequirement
	if err := json.Unmarshal(data, &requirement); err != nil {
		return nil, err
	}

	return &requirement, nil
}

func (r *CacheRepository) StoreRequirement(ctx context.Context, citySlug, projectSlug string, requirement *models.PermitRequirement) error {
	if r.rdb == nil {
		return nil
	}

	data, err := json.Marshal(requirement)
	if err != nil {
		return err
	}

	return r.rdb.Set(ctx, requirementKey(citySlug, projectSlug), data, requirementTTL).Err()
}
