package bootstrap

import (
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/jwt"
	"cowork-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(fx.Self()),
			fx.As(new(commands.TokenIssuer)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.Duration <= 0 {
		panic("invalid JWT_DURATION: must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, cfg.JWT.Issuer)
}
