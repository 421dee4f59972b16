package components

import (
	"context"

	"holiday-booker/internal/infra/cache"
	"holiday-booker/internal/infra/events"
	"holiday-booker/internal/pkg/config"
	"holiday-booker/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewCatalogCache,
		NewEventPublisher,
	),
)

// NewCatalogCache wires the optional redis cache. A nil interface (not a
// typed nil) is returned when no redis address is configured so that
// consumers can use a plain nil check.
func NewCatalogCache(lc fx.Lifecycle, cfg config.Config) usecase.CatalogCache {
	c := cache.NewCatalogCache(cfg.Redis)
	if c == nil {
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c
}

// NewEventPublisher wires the optional kafka producer, with the same nil
// interface contract as NewCatalogCache.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) usecase.EventPublisher {
	p := events.NewProducer(cfg.Kafka)
	if p == nil {
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})

	return p
}
