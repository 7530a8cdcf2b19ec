//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"click-collect/internal/handler/dto/request"
	"click-collect/internal/handler/dto/response"
	"click-collect/tests/common/authtest"
	"click-collect/tests/common/dbtest"
	"click-collect/tests/common/httptest"
	"click-collect/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt    *authtest.JWTHelper
	userID uuid.UUID
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.userID = dbtest.CreateTestUser(s.T(), s.DB, "amina", "amina@example.com")
}

func (s *authSuite) TestRegister() {
	s.Run("creates the account and answers with the user", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Username: "Bienvenu",
			Email:    "Bienvenu@Example.com",
			Password: "password123",
		}, "")

		var res response.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal("bienvenu@example.com", res.Email)
		httptest.AssertLocation(s.T(), w, "/api/auth/me")
	})

	s.Run("email already registered", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Username: "someone",
			Email:    "amina@example.com",
			Password: "password123",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Email already registered")
	})

	s.Run("username already taken", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Username: "amina",
			Email:    "other@example.com",
			Password: "password123",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Username already taken")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name            string
		emailOrUsername string
		password        string
		expectedStatus  int
	}{
		{name: "by email", emailOrUsername: "amina@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "by username", emailOrUsername: "amina", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", emailOrUsername: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", emailOrUsername: "amina@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{EmailOrUsername: tt.emailOrUsername, Password: tt.password}, "")

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), w, tt.expectedStatus, "Invalid credentials")
				return
			}
			var res response.LoginResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
			s.NotEmpty(res.Access)
			s.NotEmpty(res.Refresh)
			s.Equal(s.userID, res.User.ID)
			s.NotNil(httptest.ExtractCookie(w, "access_token"))
			s.NotNil(httptest.ExtractCookie(w, "refresh_token"))
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("bearer token", func() {
		token := s.jwt.GenerateToken(s.T(), s.userID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var res response.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("amina", res.Username)
	})

	s.Run("cookie after login", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{EmailOrUsername: "amina", Password: dbtest.TestPassword}, "")
		s.Require().Equal(http.StatusOK, w.Code)

		me := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL, nil, httptest.ExtractCookies(w), "")
		s.Equal(http.StatusOK, me.Code, me.Body.String())
	})

	s.Run("expired token", func() {
		token := s.jwt.CreateExpiredToken(s.T(), s.userID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("refresh token is not an access token", func() {
		token := s.jwt.GenerateRefreshToken(s.T(), s.userID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("no credentials", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh token in the body", func() {
		token := s.jwt.GenerateRefreshToken(s.T(), s.userID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{Refresh: token}, "")

		var res response.AccessResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.NotEmpty(res.Access)
	})

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Refresh token required")
	})

	s.Run("access token rejected", func() {
		token := s.jwt.GenerateToken(s.T(), s.userID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{Refresh: token}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the cookies", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		s.Equal(http.StatusNoContent, w.Code)

		cookie := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
	})
}
