package bootstrap

import (
	"hiburan-booking-gateway/internal/infra/backendapi"
	"hiburan-booking-gateway/internal/pkg/config"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewBackendClient,
	),
)

func NewBackendClient(cfg config.Config) *backendapi.Client {
	return backendapi.NewClient(cfg.Backend)
}
