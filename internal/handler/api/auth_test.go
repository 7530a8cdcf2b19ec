//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"click-collect/internal/handler/api"
	resdto "click-collect/internal/handler/dto/response"
	"click-collect/internal/pkg/config"
	"click-collect/internal/pkg/cookie"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/queries"
	"click-collect/tests/common/builder"
	"click-collect/tests/common/httptest"
	"click-collect/tests/common/testutil"
	commandsmock "click-collect/tests/mock/commands"
	queriesmock "click-collect/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockAuth    *commandsmock.MockAuthCommands
	mockAccount *commandsmock.MockAccountCommands
	mockQueries *queriesmock.MockUserQueries
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockAccount = commandsmock.NewMockAccountCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth, s.mockAccount, s.mockQueries, config.NewTestConfig().Cookie,
		cookie.TokenLifetimes{Access: 15 * time.Minute, Refresh: 168 * time.Hour})

	// stands in for RequireAuth: any bearer header is a signed-in user
	fakeAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		c.Next()
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.POST("/auth/forgot-password", s.handler.ForgotPassword)
	s.router.POST("/auth/reset-password", s.handler.ResetPassword)
	s.router.GET("/auth/me", fakeAuth, s.handler.Me)
	s.router.POST("/auth/request-2fa", fakeAuth, s.handler.RequestTwoFactor)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewUserBuilder().BuildRegisterDTO()
	returnUser := builder.NewUserBuilder().BuildView()

	s.Run("success: returns 201 with the new user", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), reqBody.ToInput()).Return(returnUser.ID, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnUser.ID, response.ID)
		s.Equal("/api/auth/me", rec.Header().Get("Location"))
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		testCases := []testCaseAuth{
			{name: "missing username", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "username too short", mutate: testutil.Field("username", "ab"), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password 7 chars", mutate: testutil.Field("password", "1234567"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: duplicate email", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildView()

	s.Run("success: returns tokens and sets cookies", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), reqBody.ToInput()).
			Return(&commands.LoginResult{
				UserID:    returnUser.ID,
				TokenPair: &commands.TokenPair{AccessToken: "test-access", RefreshToken: "test-refresh"},
			}, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-access", response.Access)
		s.Equal("test-refresh", response.Refresh)
		s.Equal(returnUser.Email, response.User.Email)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Equal("test-access", access.Value)
		s.True(access.HttpOnly)
		s.NotNil(httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName))
	})

	s.Run("error: missing fields", func() {
		for _, field := range []string{"emailOrUsername", "password"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid credentials",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Login failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().Login(gomock.Any(), reqBody.ToInput()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("body token wins over cookie", func() {
		s.mockAuth.EXPECT().RefreshToken(gomock.Any(), "from-body").
			Return(&commands.TokenPair{AccessToken: "fresh-access"}, nil)

		rec := httptest.Serve(s.T(), s.router, http.MethodPost, url, map[string]any{"refresh": "from-body"}, "",
			httptest.WithCookies(&http.Cookie{Name: cookie.RefreshTokenCookieName, Value: "from-cookie"}))

		var response resdto.AccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("fresh-access", response.Access)
	})

	s.Run("falls back to the cookie", func() {
		s.mockAuth.EXPECT().RefreshToken(gomock.Any(), "from-cookie").
			Return(&commands.TokenPair{AccessToken: "fresh-access"}, nil)

		rec := httptest.Serve(s.T(), s.router, http.MethodPost, url, nil, "",
			httptest.WithCookies(&http.Cookie{Name: cookie.RefreshTokenCookieName, Value: "from-cookie"}))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing token", func() {
		s.mockAuth.EXPECT().RefreshToken(gomock.Any(), "").Return(nil, commands.ErrRefreshTokenMissing)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Refresh token required")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content and clears cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Empty(access.Value)
		s.Negative(access.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildView()

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
		s.NotContains(response, "passwordHash")
	})

	s.Run("error: 401 without a user in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queryError     error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "user not found", queryError: queries.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "User not found"},
			{name: "internal server error", queryError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Failed to load user"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(nil, tc.queryError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestPasswordReset() {
	s.Run("forgot password answers the same for any address", func() {
		s.mockAccount.EXPECT().ForgotPassword(gomock.Any(), "ghost@example.com").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/forgot-password",
			map[string]any{"email": "ghost@example.com"}, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("If email exists, reset link has been sent", response.Message)
	})

	s.Run("forgot password mail failure", func() {
		s.mockAccount.EXPECT().ForgotPassword(gomock.Any(), gomock.Any()).Return(commands.ErrNotificationFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/forgot-password",
			map[string]any{"email": "amina@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to send email")
	})

	s.Run("reset requires 8 characters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/reset-password",
			map[string]any{"token": "abc", "newPassword": "short"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "min 8 characters")
	})

	s.Run("reset success", func() {
		s.mockAccount.EXPECT().ResetPassword(gomock.Any(), "abc", "new-password-1").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/reset-password",
			map[string]any{"token": "abc", "newPassword": "new-password-1"}, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRequestTwoFactor() {
	url := "/auth/request-2fa"

	s.Run("sms confirms the channel", func() {
		s.mockAccount.EXPECT().RequestTwoFactor(gomock.Any(), gomock.Any(), "sms").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"method": "sms"}, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Code sent via SMS", response.Message)
	})

	s.Run("unknown method is rejected before the usecase", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"method": "fax"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Method must be 'email' or 'sms'")
	})
}
