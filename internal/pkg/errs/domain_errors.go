package errs

import "errors"

// Error classes shared by the usecase layer. Concrete sentinels are marked
// with one of these so the HTTP boundary can pick a status without knowing
// every sentinel.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("authentication error")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnavailable     = errors.New("unavailable")
)

// Class creates a sentinel that also matches the given class under errors.Is.
func Class(msg string, class error) error {
	return Mark(New(msg), class)
}
