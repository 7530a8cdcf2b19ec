package usecase

import (
	"click-collect/internal/pkg/jwt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

// TokenValidator provides access token validation for middleware.
type TokenValidator interface {
	ValidateAccess(tokenString string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateAccess rejects refresh tokens presented as access tokens.
func (t *tokenValidatorImpl) ValidateAccess(tokenString string) (uuid.UUID, error) {
	claims, err := t.jwtService.ValidateTyped(tokenString, jwt.TokenTypeAccess)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
