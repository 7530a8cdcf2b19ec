package commands

import (
	"context"
	"strings"

	"click-collect/internal/domain/payment"
	"click-collect/internal/pkg/config"
	"click-collect/internal/pkg/errs"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment_mock.go -package=commandsmock

var ErrOrderIDRequired = errs.Class("orderId is required", errs.ErrValidation)

type PaymentSession struct {
	PaymentURL string
	Provider   string
}

// PaymentCommands starts a hosted payment. The processor is mocked; no
// money moves and the order is not looked up.
type PaymentCommands interface {
	Initiate(ctx context.Context, orderID, method string) (*PaymentSession, error)
}

type paymentCommandsImpl struct {
	baseURL string
}

func NewPaymentCommands(cfg config.Config) PaymentCommands {
	return &paymentCommandsImpl{baseURL: cfg.App.PaymentBaseURL}
}

func (p *paymentCommandsImpl) Initiate(_ context.Context, orderID, method string) (*PaymentSession, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderIDRequired
	}
	m, err := payment.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return &PaymentSession{
		PaymentURL: payment.CheckoutURL(p.baseURL, orderID, m),
		Provider:   m.Provider(),
	}, nil
}
