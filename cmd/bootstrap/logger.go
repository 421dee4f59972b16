package bootstrap

import (
	"log/slog"

	"holiday-booker/internal/handler/middleware"
	"holiday-booker/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the application logger from LOG_* settings. The same
// handler backs both the request middleware and direct slog callers.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
