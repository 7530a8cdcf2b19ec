package api

import (
	"net/http"
	"strings"

	reqdto "click-collect/internal/handler/dto/request"
	resdto "click-collect/internal/handler/dto/response"
	"click-collect/internal/handler/httperr"
	"click-collect/internal/handler/middleware"
	"click-collect/internal/pkg/config"
	"click-collect/internal/pkg/cookie"
	"click-collect/internal/pkg/errs"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthorized = errs.Class("unauthorized", errs.ErrUnauthenticated)

type AuthHandler struct {
	auth      commands.AuthCommands
	account   commands.AccountCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
	lifetimes cookie.TokenLifetimes
}

func NewAuthHandler(
	auth commands.AuthCommands,
	account commands.AccountCommands,
	users queries.UserQueries,
	cookieCfg config.CookieConfig,
	lifetimes cookie.TokenLifetimes,
) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		account:   account,
		users:     users,
		cookieCfg: cookieCfg,
		lifetimes: lifetimes,
	}
}

// @Summary Register
// @Description Create a customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, err := h.auth.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Handle(c, err, "Registration failed")
		return
	}

	user, err := h.userResponse(c, userID)
	if err != nil {
		httperr.Handle(c, err, "Registration failed")
		return
	}
	c.Header("Location", "/api/auth/me")
	c.JSON(http.StatusCreated, user)
}

// @Summary User login
// @Description Login with email or username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Handle(c, err, "Login failed")
		return
	}

	user, err := h.userResponse(c, result.UserID)
	if err != nil {
		httperr.Handle(c, err, "Login failed")
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, result.TokenPair.AccessToken, result.TokenPair.RefreshToken, h.lifetimes)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Access:  result.TokenPair.AccessToken,
		Refresh: result.TokenPair.RefreshToken,
		User:    user,
	})
}

// @Summary Refresh access token
// @Description Mint a new access token from a refresh token (body first, then cookie)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.AccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	// an empty body is fine; the cookie may carry the token
	_ = c.ShouldBindJSON(&req)

	token := strings.TrimSpace(req.Refresh)
	if token == "" {
		token = cookie.GetRefreshToken(c)
	}

	pair, err := h.auth.RefreshToken(c.Request.Context(), token)
	if err != nil {
		httperr.Handle(c, err, "Token refresh failed")
		return
	}

	cookie.SetAccessCookie(c, h.cookieCfg, pair.AccessToken, h.lifetimes.Access)
	c.JSON(http.StatusOK, resdto.AccessResponse{Access: pair.AccessToken})
}

// @Summary User logout
// @Description Clear the token cookies
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; dropping the cookies is all the server can do
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	user, err := h.userResponse(c, userID)
	if err != nil {
		httperr.Handle(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Update current user
// @Description Update profile fields; changing the password requires the current one
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/me [patch]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.account.UpdateProfile(c.Request.Context(), userID, req.ToInput()); err != nil {
		httperr.Handle(c, err, "Profile update failed")
		return
	}

	user, err := h.userResponse(c, userID)
	if err != nil {
		httperr.Handle(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Forgot password
// @Description Email a reset link; answers the same whether or not the address is known
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ForgotPasswordRequest true "Email"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req reqdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email required", nil)
		return
	}
	if err := h.account.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		httperr.Handle(c, err, "Failed to send email")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "If email exists, reset link has been sent"})
}

// @Summary Reset password
// @Description Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Token and new password (min 8 characters) required", nil)
		return
	}
	if err := h.account.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		httperr.Handle(c, err, "Password reset failed")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Password reset successfully"})
}

// @Summary Request a two-factor code
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RequestTwoFactorRequest true "Delivery method"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /auth/request-2fa [post]
func (h *AuthHandler) RequestTwoFactor(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.RequestTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Method must be 'email' or 'sms'", nil)
		return
	}
	if err := h.account.RequestTwoFactor(c.Request.Context(), userID, req.Method); err != nil {
		httperr.Handle(c, err, "Failed to send code")
		return
	}

	msg := "Code sent to email"
	if req.Method == "sms" {
		msg = "Code sent via SMS"
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msg})
}

// @Summary Verify a two-factor code
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyTwoFactorRequest true "Code"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/verify-2fa [post]
func (h *AuthHandler) VerifyTwoFactor(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.VerifyTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Code required", nil)
		return
	}
	if err := h.account.VerifyTwoFactor(c.Request.Context(), userID, req.Code); err != nil {
		httperr.Handle(c, err, "Code verification failed")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Code verified successfully"})
}

func (h *AuthHandler) userResponse(c *gin.Context, userID uuid.UUID) (*resdto.UserResponse, error) {
	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		return nil, err
	}
	return resdto.From[resdto.UserResponse](view)
}
