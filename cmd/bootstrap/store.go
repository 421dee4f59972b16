package bootstrap

import (
	"context"
	"fmt"

	"holiday-booker/internal/infra/db"
	"holiday-booker/internal/infra/store"
	"holiday-booker/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore picks the snapshot backend from STORE_DRIVER. The postgres
// driver owns its connection pool and releases it on shutdown.
func NewStore(lc fx.Lifecycle, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "file":
		return store.NewFileStore(cfg.Store.Path), nil
	case "memory":
		return store.NewMemoryStore(), nil
	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})
		return store.NewPGStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}
