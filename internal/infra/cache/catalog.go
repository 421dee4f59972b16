package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"holiday-booker/internal/domain/holiday"
	"holiday-booker/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// CatalogCache is a read-through cache for the package catalog. The
// catalog is read-mostly, so a short TTL is enough; a cache miss or any
// Redis failure falls back to the store.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache returns nil when no Redis address is configured; the
// service runs without a cache in that case.
func NewCatalogCache(cfg config.RedisConfig) *CatalogCache {
	if cfg.Addr == "" {
		return nil
	}
	return &CatalogCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    cfg.TTL,
	}
}

func (c *CatalogCache) GetPackages(ctx context.Context) ([]*holiday.Package, error) {
	data, err := c.client.Get(ctx, packagesKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var pkgs []*holiday.Package
	if err := json.Unmarshal(data, &pkgs); err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (c *CatalogCache) SetPackages(ctx context.Context, pkgs []*holiday.Package) error {
	payload, err := json.Marshal(pkgs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, packagesKey(), payload, c.ttl).Err()
}

func (c *CatalogCache) Close() error {
	return c.client.Close()
}

func packagesKey() string {
	return "cache:packages"
}
