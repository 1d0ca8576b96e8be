package bootstrap

import (
	"context"

	"hiburan-booking-gateway/internal/countdown"
	"hiburan-booking-gateway/internal/pkg/clock"
	"hiburan-booking-gateway/internal/pkg/config"

	"go.uber.org/fx"
)

var CountdownModule = fx.Module("countdown",
	fx.Provide(
		NewCountdownRegistry,
	),
)

func NewCountdownRegistry(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) *countdown.Registry {
	registry := countdown.NewRegistry(clk, cfg.Session.CountdownTick)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			registry.StopAll()
			return nil
		},
	})

	return registry
}
