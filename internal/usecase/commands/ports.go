package commands

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// OrderConfirmation is what the customer is told about a placed order.
type OrderConfirmation struct {
	OrderNumber  string
	CustomerName string
	Items        []ConfirmationLine
	Amount       decimal.Decimal
	Currency     string
	PickupCode   string
	PickupDate   string
	PickupFrom   string
	PickupTo     string
	ExpiresAt    time.Time
}

type ConfirmationLine struct {
	Name     string
	Quantity int
	Subtotal decimal.Decimal
}

type Notifier interface {
	OrderConfirmationEmail(ctx context.Context, to string, c OrderConfirmation) error
	OrderConfirmationSMS(ctx context.Context, phone string, c OrderConfirmation) error
	PasswordResetEmail(ctx context.Context, to, username, resetURL string) error
	TwoFactorEmail(ctx context.Context, to, username, code string) error
	TwoFactorSMS(ctx context.Context, phone, code string) error
}

// Dispatcher runs work after the request has been answered. Errors are
// logged by the dispatcher and never reach the caller.
type Dispatcher interface {
	Go(ctx context.Context, task string, fn func(ctx context.Context) error)
}

type UploadSignature struct {
	Signature string
	Timestamp int64
	CloudName string
	APIKey    string
	Folder    string
}

type ImageSigner interface {
	Sign(now time.Time) (*UploadSignature, error)
}
