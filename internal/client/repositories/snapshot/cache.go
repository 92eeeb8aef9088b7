// Package snapshot persists the last-known-good subscription status on this
// device. It is a display fallback for when the authoritative check fails —
// never a source of truth.
package snapshot

import (
	"context"
	"encoding/json"

	"github.com/vortextv/vortexcli/internal/client/models"
	"github.com/vortextv/vortexcli/internal/client/repositories/metadata"
	"github.com/vortextv/vortexcli/internal/common"
	"github.com/vortextv/vortexcli/internal/logging"
)

type Cache struct {
	repo metadata.Repository
	log  logging.Logger
}

func NewCache(repo metadata.Repository, log logging.Logger) *Cache {
	return &Cache{repo: repo, log: log}
}

// Load returns the cached snapshot, or nil when none exists. A corrupt
// cache entry is logged and treated as absent rather than failing the
// caller.
func (c *Cache) Load(ctx context.Context) *models.SubscriptionStatus {
	data, err := c.repo.Get(ctx, common.SubscriptionCacheKey)
	if err != nil {
		c.log.Warn(ctx, "failed to read cached subscription data", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var st models.SubscriptionStatus
	if err := json.Unmarshal(data, &st); err != nil {
		c.log.Warn(ctx, "discarding corrupt subscription cache", "error", err)
		return nil
	}
	return &st
}

// Save overwrites the cached snapshot.
func (c *Cache) Save(ctx context.Context, st *models.SubscriptionStatus) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return c.repo.Set(ctx, common.SubscriptionCacheKey, data)
}

// Clear removes the cached snapshot.
func (c *Cache) Clear(ctx context.Context) error {
	return c.repo.Delete(ctx, common.SubscriptionCacheKey)
}
