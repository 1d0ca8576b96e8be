package bootstrap

import (
	"time"

	"hiburan-booking-gateway/internal/pkg/config"
	"hiburan-booking-gateway/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// Token lifetime only matters for tokens the gateway mints itself (tooling
// and tests); user tokens come from the backend with their own expiry.
const issuedTokenDuration = 24 * time.Hour

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, issuedTokenDuration)
}
