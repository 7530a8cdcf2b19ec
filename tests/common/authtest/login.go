//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"click-collect/internal/handler/dto/request"
	"click-collect/tests/common/dbtest"
	"click-collect/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in and returns the access token set in the cookie.
func LoginUser(t *testing.T, router *gin.Engine, emailOrUsername, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{EmailOrUsername: emailOrUsername, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.Querier, router *gin.Engine, username, email string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, username, email)
	return LoginUser(t, router, email, dbtest.TestPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
