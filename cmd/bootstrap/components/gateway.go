package components

import (
	"hiburan-booking-gateway/internal/countdown"
	"hiburan-booking-gateway/internal/infra/backendapi"
	"hiburan-booking-gateway/internal/infra/sessionstore"
	"hiburan-booking-gateway/internal/pkg/config"
	"hiburan-booking-gateway/internal/usecase/commands"
	"hiburan-booking-gateway/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// GatewayModule binds the backend client, the Redis session store, and the
// countdown registry to the interfaces the use cases consume.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewSessionStore,
		// Backend client
		fx.Annotate(
			func(client *backendapi.Client) *backendapi.Client { return client },
			fx.As(new(commands.Gateway)),
		),
		fx.Annotate(
			func(client *backendapi.Client) *backendapi.Client { return client },
			fx.As(new(queries.Gateway)),
		),
		// Session store
		fx.Annotate(
			func(store *sessionstore.Store) *sessionstore.Store { return store },
			fx.As(new(commands.SessionStore)),
		),
		fx.Annotate(
			func(store *sessionstore.Store) *sessionstore.Store { return store },
			fx.As(new(queries.SessionStore)),
		),
		// Deadline watchers
		fx.Annotate(
			func(registry *countdown.Registry) *countdown.Registry { return registry },
			fx.As(new(commands.DeadlineScheduler)),
		),
	),
)

func NewSessionStore(rdb *redis.Client, cfg config.Config) *sessionstore.Store {
	return sessionstore.NewStore(rdb, cfg.Session)
}
