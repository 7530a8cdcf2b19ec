package order

import (
	"fmt"
	"time"

	"click-collect/internal/pkg/secret"
)

const (
	orderNumberSuffixLn = 6
	pickupCodeLn        = 8
)

type CodeGenerator interface {
	OrderNumber(now time.Time) (string, error)
	PickupCode() (string, error)
}

type RandomCodes struct{}

func NewRandomCodes() CodeGenerator {
	return RandomCodes{}
}

// OrderNumber is GC-<unix millis>-<6 uppercase alphanumerics>.
func (RandomCodes) OrderNumber(now time.Time) (string, error) {
	suffix, err := secret.String(orderNumberSuffixLn, secret.Alphanumeric)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("GC-%d-%s", now.UnixMilli(), suffix), nil
}

func (RandomCodes) PickupCode() (string, error) {
	return secret.String(pickupCodeLn, secret.Alphanumeric)
}
