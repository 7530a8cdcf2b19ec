package commands

import (
	"context"
	"log/slog"
	"strings"

	"click-collect/internal/domain/user"
	"click-collect/internal/infra"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/pkg/config"
	"click-collect/internal/pkg/errs"
	"click-collect/internal/pkg/password"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=account.go -destination=../../../tests/mock/commands/account_mock.go -package=commandsmock

var (
	ErrCurrentPasswordRequired = errs.Class("current password is required to set a new one", errs.ErrValidation)
	ErrWrongPassword           = errs.Class("current password is incorrect", errs.ErrUnauthenticated)
	ErrInvalidTwoFactorMethod  = errs.Class("method must be email or sms", errs.ErrValidation)
	ErrPhoneRequired           = errs.Class("no phone number on this account", errs.ErrValidation)
	ErrNotificationFailed      = errs.New("failed to send notification")
)

type TwoFactorMethod string

const (
	TwoFactorEmail TwoFactorMethod = "email"
	TwoFactorSMS   TwoFactorMethod = "sms"
)

// UpdateProfileInput leaves nil fields untouched.
type UpdateProfileInput struct {
	Username        *string
	Email           *string
	Phone           *string
	CurrentPassword *string
	NewPassword     *string
}

type AccountCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	RequestTwoFactor(ctx context.Context, userID uuid.UUID, method string) error
	VerifyTwoFactor(ctx context.Context, userID uuid.UUID, code string) error
}

type accountCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
	app      config.AppConfig
}

func NewAccountCommands(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock, cfg config.Config) AccountCommands {
	return &accountCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		app:      cfg.App,
	}
}

func (a *accountCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error {
	var newHash string
	if in.NewPassword != nil {
		if in.CurrentPassword == nil || *in.CurrentPassword == "" {
			return ErrCurrentPasswordRequired
		}
		if err := password.Validate(*in.NewPassword); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		hash, err := password.HashPassword(*in.NewPassword)
		if err != nil {
			return err
		}
		newHash = hash
	}

	var (
		username *user.Username
		email    *user.Email
		phone    *string
	)
	if in.Username != nil {
		v, err := user.NewUsername(*in.Username)
		if err != nil {
			return err
		}
		username = &v
	}
	if in.Email != nil {
		v, err := user.NewEmail(*in.Email)
		if err != nil {
			return err
		}
		email = &v
	}
	if in.Phone != nil {
		v, err := user.NewPhone(*in.Phone)
		if err != nil {
			return err
		}
		phone = v
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := loadUser(ctx, tx.Users(), userID)
		if err != nil {
			return err
		}
		if newHash != "" {
			if password.ComparePassword(u.PasswordHash(), *in.CurrentPassword) != nil {
				return ErrWrongPassword
			}
		}
		if err := ensureAvailable(ctx, tx.Users(), userID, username, email); err != nil {
			return err
		}

		now := a.clock.Now()
		if username != nil {
			u.Rename(*username, now)
		}
		if email != nil {
			u.ChangeEmail(*email, now)
		}
		if in.Phone != nil {
			u.ChangePhone(phone, now)
		}
		if newHash != "" {
			u.ChangePasswordHash(newHash, now)
		}

		return tx.Users().Update(ctx, u)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return takenByRival(ctx, a.uow.Reads().Users(), userID, username, email)
	}
	return err
}

// ForgotPassword answers the same way whether or not the address is known.
func (a *accountCommandsImpl) ForgotPassword(ctx context.Context, email string) error {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil
	}

	var (
		token    string
		username string
		known    = true
	)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByEmail(ctx, addr.Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				known = false
				return nil
			}
			return err
		}
		token, err = u.BeginPasswordReset(a.clock.Now())
		if err != nil {
			return err
		}
		username = u.Username().Value()
		return tx.Users().Update(ctx, u)
	})
	if err != nil {
		return err
	}
	if !known {
		slog.Debug("password reset requested for unknown address")
		return nil
	}

	link := strings.TrimRight(a.app.FrontendURL, "/") + "/reset-password?token=" + token
	if err := a.notifier.PasswordResetEmail(ctx, addr.Value(), username, link); err != nil {
		return errs.Mark(errs.Wrap(err, "password reset email"), ErrNotificationFailed)
	}
	return nil
}

func (a *accountCommandsImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := password.Validate(newPassword); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	selector, _, ok := user.SplitResetToken(strings.TrimSpace(token))
	if !ok {
		return user.ErrInvalidResetToken
	}
	hash, err := password.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByResetSelector(ctx, selector)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return user.ErrInvalidResetToken
			}
			return err
		}
		if err := u.CompletePasswordReset(strings.TrimSpace(token), hash, a.clock.Now()); err != nil {
			return err
		}
		return tx.Users().Update(ctx, u)
	})
}

func (a *accountCommandsImpl) RequestTwoFactor(ctx context.Context, userID uuid.UUID, method string) error {
	m := TwoFactorMethod(strings.ToLower(strings.TrimSpace(method)))
	if m != TwoFactorEmail && m != TwoFactorSMS {
		return ErrInvalidTwoFactorMethod
	}

	var code string
	var u *user.User
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		u, err = loadUser(ctx, tx.Users(), userID)
		if err != nil {
			return err
		}
		if m == TwoFactorSMS && u.Phone() == nil {
			return ErrPhoneRequired
		}
		code, err = u.BeginTwoFactor(a.clock.Now())
		if err != nil {
			return err
		}
		return tx.Users().Update(ctx, u)
	})
	if err != nil {
		return err
	}

	if m == TwoFactorSMS {
		err = a.notifier.TwoFactorSMS(ctx, *u.Phone(), code)
	} else {
		err = a.notifier.TwoFactorEmail(ctx, u.Email().Value(), u.Username().Value(), code)
	}
	if err != nil {
		return errs.Mark(errs.Wrap(err, "two-factor code"), ErrNotificationFailed)
	}
	return nil
}

func (a *accountCommandsImpl) VerifyTwoFactor(ctx context.Context, userID uuid.UUID, code string) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := loadUser(ctx, tx.Users(), userID)
		if err != nil {
			return err
		}
		if err := u.VerifyTwoFactor(strings.TrimSpace(code), a.clock.Now()); err != nil {
			return err
		}
		return tx.Users().Update(ctx, u)
	})
}

func loadUser(ctx context.Context, users shared.UserRepository, id uuid.UUID) (*user.User, error) {
	u, err := users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
