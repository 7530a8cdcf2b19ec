package user

import (
	"strings"
	"time"

	"click-collect/internal/pkg/errs"
	"click-collect/internal/pkg/secret"
)

var (
	ErrSecretMismatch = errs.Class("invalid code", errs.ErrUnauthenticated)
	ErrSecretExpired  = errs.Class("code expired", errs.ErrUnauthenticated)
	ErrNoSecret       = errs.Class("no pending verification", errs.ErrUnauthenticated)
)

// OneTimeSecret holds only a salted digest of a reset token or 2FA code.
// The selector, when set, is the public half used to find the owner.
type OneTimeSecret struct {
	selector  string
	salt      string
	digest    string
	expiresAt time.Time
}

func issueSecret(selector, value string, now time.Time, ttl time.Duration) (*OneTimeSecret, error) {
	salt, err := secret.Salt()
	if err != nil {
		return nil, err
	}
	return &OneTimeSecret{
		selector:  selector,
		salt:      salt,
		digest:    secret.Digest(salt, value),
		expiresAt: now.Add(ttl),
	}, nil
}

// ReconstructSecret rebuilds a secret from its stored form ("salt$digest").
func ReconstructSecret(selector, encoded string, expiresAt time.Time) *OneTimeSecret {
	salt, digest, ok := strings.Cut(encoded, "$")
	if !ok {
		return nil
	}
	return &OneTimeSecret{selector: selector, salt: salt, digest: digest, expiresAt: expiresAt}
}

func (s *OneTimeSecret) Selector() string     { return s.selector }
func (s *OneTimeSecret) Encoded() string      { return s.salt + "$" + s.digest }
func (s *OneTimeSecret) ExpiresAt() time.Time { return s.expiresAt }

func (s *OneTimeSecret) verify(value string, now time.Time) error {
	if !secret.Equal(secret.Digest(s.salt, value), s.digest) {
		return ErrSecretMismatch
	}
	if !now.Before(s.expiresAt) {
		return ErrSecretExpired
	}
	return nil
}
