package middleware

import (
	"log/slog"
	"slices"

	"click-collect/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes X-Session-ID, which guest carts depend on.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := cfg.AllowHeaders
	if !slices.Contains(allowHeaders, headerSessionID) {
		allowHeaders = append(slices.Clone(allowHeaders), headerSessionID)
	}
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    append(slices.Clone(cfg.ExposeHeaders), headerRequestID),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
