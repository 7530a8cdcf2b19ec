package user

import (
	"time"

	"click-collect/internal/pkg/errs"
	"click-collect/internal/pkg/secret"

	"github.com/google/uuid"
)

const (
	ResetTokenTTL   = time.Hour
	TwoFactorTTL    = 10 * time.Minute
	resetSelectorLn = 16
	resetVerifierLn = 32
	twoFactorLn     = 6
)

var ErrInvalidResetToken = errs.Class("invalid or expired reset token", errs.ErrUnauthenticated)

type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	phone        *string
	passwordHash string
	reset        *OneTimeSecret
	twoFactor    *OneTimeSecret
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email Email, phone *string, passwordHash string, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}
}

// ReconstructUser rebuilds a persisted user without re-validating stored values.
func ReconstructUser(
	id uuid.UUID,
	username, email string,
	phone *string,
	passwordHash string,
	reset, twoFactor *OneTimeSecret,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     Username{value: username},
		email:        Email{value: email},
		phone:        phone,
		passwordHash: passwordHash,
		reset:        reset,
		twoFactor:    twoFactor,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID             { return u.id }
func (u *User) Username() Username        { return u.username }
func (u *User) Email() Email              { return u.email }
func (u *User) Phone() *string            { return u.phone }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Reset() *OneTimeSecret     { return u.reset }
func (u *User) TwoFactor() *OneTimeSecret { return u.twoFactor }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }

func (u *User) Rename(username Username, now time.Time) {
	u.username = username
	u.updatedAt = now
}

func (u *User) ChangeEmail(email Email, now time.Time) {
	u.email = email
	u.updatedAt = now
}

func (u *User) ChangePhone(phone *string, now time.Time) {
	u.phone = phone
	u.updatedAt = now
}

func (u *User) ChangePasswordHash(hash string, now time.Time) {
	u.passwordHash = hash
	u.updatedAt = now
}

// BeginPasswordReset replaces any pending reset and returns the raw token to mail out.
func (u *User) BeginPasswordReset(now time.Time) (string, error) {
	selector, err := secret.String(resetSelectorLn, secret.MixedAlphanumeric)
	if err != nil {
		return "", err
	}
	verifier, err := secret.String(resetVerifierLn, secret.MixedAlphanumeric)
	if err != nil {
		return "", err
	}
	s, err := issueSecret(selector, verifier, now, ResetTokenTTL)
	if err != nil {
		return "", err
	}
	u.reset = s
	u.updatedAt = now
	return selector + verifier, nil
}

// CompletePasswordReset consumes the pending reset. A token works once.
func (u *User) CompletePasswordReset(token, newHash string, now time.Time) error {
	_, verifier, ok := SplitResetToken(token)
	if !ok || u.reset == nil {
		return ErrInvalidResetToken
	}
	if err := u.reset.verify(verifier, now); err != nil {
		return errs.Mark(err, ErrInvalidResetToken)
	}
	u.reset = nil
	u.passwordHash = newHash
	u.updatedAt = now
	return nil
}

// SplitResetToken separates the lookup selector from the secret verifier.
func SplitResetToken(token string) (selector, verifier string, ok bool) {
	if len(token) != resetSelectorLn+resetVerifierLn {
		return "", "", false
	}
	return token[:resetSelectorLn], token[resetSelectorLn:], true
}

func (u *User) BeginTwoFactor(now time.Time) (string, error) {
	code, err := secret.String(twoFactorLn, secret.Digits)
	if err != nil {
		return "", err
	}
	s, err := issueSecret("", code, now, TwoFactorTTL)
	if err != nil {
		return "", err
	}
	u.twoFactor = s
	u.updatedAt = now
	return code, nil
}

// VerifyTwoFactor clears the pending code on success only.
func (u *User) VerifyTwoFactor(code string, now time.Time) error {
	if u.twoFactor == nil {
		return ErrNoSecret
	}
	if err := u.twoFactor.verify(code, now); err != nil {
		return err
	}
	u.twoFactor = nil
	u.updatedAt = now
	return nil
}
