package payment

import (
	"net/url"
	"strings"

	"click-collect/internal/pkg/errs"
)

var ErrInvalidMethod = errs.Class("payment method must be momo or card", errs.ErrValidation)

type Method string

const (
	MethodMomo Method = "momo"
	MethodCard Method = "card"
)

func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodMomo:
		return MethodMomo, nil
	case MethodCard:
		return MethodCard, nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) String() string { return string(m) }

// Provider is the customer-facing name of the processor behind a method.
func (m Method) Provider() string {
	if m == MethodMomo {
		return "MTN Mobile Money"
	}
	return "Visa/Mastercard"
}

// CheckoutURL builds the mock payment page link for an order.
func CheckoutURL(baseURL, orderID string, m Method) string {
	return strings.TrimRight(baseURL, "/") + "/pay?order=" + url.QueryEscape(orderID) + "&method=" + url.QueryEscape(m.String())
}
