package commands

import (
	"context"
	"strings"

	"click-collect/internal/domain/user"
	"click-collect/internal/infra"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/pkg/errs"
	"click-collect/internal/pkg/jwt"
	"click-collect/internal/pkg/password"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

var (
	ErrInvalidCredentials  = errs.Class("invalid credentials", errs.ErrUnauthenticated)
	ErrTokenValidation     = errs.Class("invalid or expired token", errs.ErrUnauthenticated)
	ErrRefreshTokenMissing = errs.Class("refresh token required", errs.ErrValidation)
	ErrTokenGeneration     = errs.New("token generation failed")
	ErrEmailTaken          = errs.Class("email already registered", errs.ErrConflict)
	ErrUsernameTaken       = errs.Class("username already taken", errs.ErrConflict)
	ErrUserNotFound        = errs.Class("user not found", errs.ErrNotFound)
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Phone    string
}

type LoginInput struct {
	EmailOrUsername string
	Password        string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return uuid.Nil, err
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	phone, err := user.NewPhone(in.Phone)
	if err != nil {
		return uuid.Nil, err
	}
	if err := password.Validate(in.Password); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}
	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}

	u := user.NewUser(username, email, phone, hash, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureAvailable(ctx, tx.Users(), uuid.Nil, &username, &email); err != nil {
			return err
		}
		return tx.Users().Create(ctx, u)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		err = takenByRival(ctx, a.uow.Reads().Users(), u.ID(), &username, &email)
	}
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	u, err := a.findByLogin(ctx, in.EmailOrUsername)
	if err != nil {
		return nil, err
	}
	if err := password.ComparePassword(u.PasswordHash(), in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := a.issue(u.ID())
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: u.ID(), TokenPair: pair}, nil
}

// RefreshToken issues a new access token only. The refresh token keeps its
// original expiry.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrRefreshTokenMissing
	}
	claims, err := a.jwtService.ValidateTyped(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if _, err := a.uow.Reads().Users().FindByID(ctx, claims.UserID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenValidation
		}
		return nil, err
	}

	access, err := a.jwtService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access}, nil
}

// findByLogin hides whether the account exists.
func (a *authCommandsImpl) findByLogin(ctx context.Context, login string) (*user.User, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, ErrInvalidCredentials
	}

	users := a.uow.Reads().Users()
	var (
		u   *user.User
		err error
	)
	if strings.Contains(login, "@") {
		u, err = users.FindByEmail(ctx, strings.ToLower(login))
	} else {
		u, err = users.FindByUsername(ctx, login)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return u, nil
}

func (a *authCommandsImpl) issue(userID uuid.UUID) (*TokenPair, error) {
	access, err := a.jwtService.GenerateAccessToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.jwtService.GenerateRefreshToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ensureAvailable rejects a username or email held by another account.
func ensureAvailable(ctx context.Context, users shared.UserRepository, self uuid.UUID, username *user.Username, email *user.Email) error {
	if username != nil {
		existing, err := users.FindByUsername(ctx, username.Value())
		switch {
		case err == nil && existing.ID() != self:
			return ErrUsernameTaken
		case err != nil && !infra.IsKind(err, infra.KindNotFound):
			return err
		}
	}
	if email != nil {
		existing, err := users.FindByEmail(ctx, email.Value())
		switch {
		case err == nil && existing.ID() != self:
			return ErrEmailTaken
		case err != nil && !infra.IsKind(err, infra.KindNotFound):
			return err
		}
	}
	return nil
}

// takenByRival names the field a concurrent writer claimed after ensureAvailable
// passed. The unique index does not say which one collided, so it is looked up
// again outside the failed transaction; username wins when both are taken.
func takenByRival(ctx context.Context, users shared.UserRepository, self uuid.UUID, username *user.Username, email *user.Email) error {
	err := ensureAvailable(ctx, users, self, username, email)
	if errs.Is(err, ErrUsernameTaken) || errs.Is(err, ErrEmailTaken) {
		return err
	}
	if username != nil {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}
