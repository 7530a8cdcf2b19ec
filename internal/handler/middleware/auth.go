package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"click-collect/internal/handler/httperr"
	"click-collect/internal/pkg/cookie"
	"click-collect/internal/pkg/errs"
	"click-collect/internal/usecase"
	"click-collect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	users          queries.UserQueries
}

const (
	ctxUserIDKey   = "user_id"
	ctxUsernameKey = "username"
	ctxEmailKey    = "email"
)

var (
	errTokenRequired = errs.Class("access token required", errs.ErrUnauthenticated)
	errTokenInvalid  = errs.Class("invalid or expired token", errs.ErrUnauthenticated)
	errUserLookup    = errs.New("failed to load authenticated user")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, users queries.UserQueries) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		users:          users,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		if err := m.authenticate(c, token); err != nil {
			if errs.Is(err, errUserLookup) {
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
				return
			}
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errTokenInvalid), "Invalid or expired token", nil)
			return
		}
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present. A bad token
// leaves the request anonymous; a failed user lookup still aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if err := m.authenticate(c, token); errs.Is(err, errUserLookup) {
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
				return
			}
		}
		c.Next()
	}
}

// authenticate also requires the user to still exist.
func (m *AuthMiddleware) authenticate(c *gin.Context, token string) error {
	userID, err := m.tokenValidator.ValidateAccess(token)
	if err != nil {
		return err
	}
	u, err := m.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return err
		}
		return errs.Mark(err, errUserLookup)
	}

	c.Set(ctxUserIDKey, u.ID)
	c.Set(ctxUsernameKey, u.Username)
	c.Set(ctxEmailKey, u.Email)
	return nil
}

// extractToken prefers the Authorization header and falls back to the cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(authHeader[len("Bearer "):]); token != "" {
			return token
		}
	}
	return cookie.GetAccessToken(c)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserIDPtr is nil for anonymous requests.
func GetUserIDPtr(c *gin.Context) *uuid.UUID {
	id, ok := GetUserID(c)
	if !ok {
		return nil
	}
	return &id
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(ctxEmailKey)
}

func GetUsername(c *gin.Context) string {
	return c.GetString(ctxUsernameKey)
}
