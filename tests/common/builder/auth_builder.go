//go:build unit || e2e

package builder

import (
	reqdto "click-collect/internal/handler/dto/request"
)

type AuthBuilder struct {
	EmailOrUsername string
	Password        string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		EmailOrUsername: "amina@example.com",
		Password:        "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		EmailOrUsername: a.EmailOrUsername,
		Password:        a.Password,
	}
}
