package cookie

import (
	"net/http"
	"time"

	"click-collect/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
	SessionHeader          = "X-Session-ID"
)

type TokenLifetimes struct {
	Access  time.Duration
	Refresh time.Duration
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, ttl TokenLifetimes) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, accessToken, int(ttl.Access.Seconds()), "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, refreshToken, int(ttl.Refresh.Seconds()), "/", cfg.Domain, cfg.Secure, true)
}

func SetAccessCookie(c *gin.Context, cfg config.CookieConfig, accessToken string, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, accessToken, int(ttl.Seconds()), "/", cfg.Domain, cfg.Secure, true)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	for _, name := range []string{AccessTokenCookieName, RefreshTokenCookieName} {
		c.SetCookie(name, "", -1, "/", cfg.Domain, cfg.Secure, true)
	}
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

// GetSessionID returns the guest cart session sent by the storefront.
func GetSessionID(c *gin.Context) string {
	return c.GetHeader(SessionHeader)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
