package bootstrap

import (
	"log/slog"

	"commerce-core/internal/handler/middleware"
	"commerce-core/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewSlogLogger(cfg.Log)
	slog.SetDefault(logger)
	return logger
}
