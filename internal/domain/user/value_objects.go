package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"click-collect/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Class("invalid email format", errs.ErrValidation)
	ErrInvalidUsername = errs.Class("username must be 3 to 50 characters", errs.ErrValidation)
	ErrInvalidPhone    = errs.Class("invalid phone number", errs.ErrValidation)
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ]{6,20}$`)
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

type Email struct {
	value string
}

// NewEmail lowercases the address so lookups are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < MinUsernameLength || n > MaxUsernameLength {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

// NewPhone returns nil for a blank input.
func NewPhone(s string) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !phoneRegex.MatchString(s) {
		return nil, ErrInvalidPhone
	}
	return &s, nil
}
