package bootstrap

import (
	"fmt"
	"time"

	"click-collect/internal/pkg/config"
	"click-collect/internal/pkg/cookie"
	"click-collect/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewTokenLifetimes,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
	}

	refreshTokenDuration, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TOKEN_DURATION: %w", err)
	}

	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration, refreshTokenDuration), nil
}

// NewTokenLifetimes keeps cookie max-age in step with token expiry.
func NewTokenLifetimes(svc *jwt.Service) cookie.TokenLifetimes {
	return cookie.TokenLifetimes{
		Access:  svc.AccessDuration(),
		Refresh: svc.RefreshDuration(),
	}
}
