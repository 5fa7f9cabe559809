package events

import (
	"context"
	"log/slog"

	"connect/config"
	"connect/internal/domain/service"

	"go.uber.org/fx"
)

// BusParams holds dependencies for the EventBus, injected by Fx
type BusParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventBus selects the bus implementation from configuration: redis
// pub/sub when a redis connection is configured, in-process otherwise.
func NewEventBus(params BusParams) (service.EventBus, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	var bus service.EventBus
	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, using in-process event bus")
		bus = NewMemoryBus()
	} else {
		logger.Info("Using redis event bus", slog.String("addr", cfg.Addr))

		var err error
		bus, err = NewRedisBus(cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing EventBus")

			return bus.Close()
		},
	})

	return bus, nil
}
