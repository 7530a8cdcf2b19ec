package request

import "click-collect/internal/usecase/commands"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone,omitempty"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
	}
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{EmailOrUsername: r.EmailOrUsername, Password: r.Password}
}

// RefreshRequest is checked by the handler so a missing token answers with its own message.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type UpdateProfileRequest struct {
	Username        *string `json:"username,omitempty" binding:"omitempty,min=3,max=50"`
	Email           *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone           *string `json:"phone,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty" binding:"omitempty,min=8"`
}

func (r *UpdateProfileRequest) ToInput() commands.UpdateProfileInput {
	return commands.UpdateProfileInput{
		Username:        r.Username,
		Email:           r.Email,
		Phone:           r.Phone,
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
	}
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type RequestTwoFactorRequest struct {
	Method string `json:"method" binding:"required,oneof=email sms"`
}

type VerifyTwoFactorRequest struct {
	Code string `json:"code" binding:"required"`
}
