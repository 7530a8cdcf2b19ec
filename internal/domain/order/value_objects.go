package order

import (
	"strings"

	"click-collect/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingFields     = errs.Class("missing required fields", errs.ErrValidation)
	ErrEmptyOrder        = errs.Class("order has no items", errs.ErrValidation)
	ErrInvalidQuantity   = errs.Class("item quantity must be at least 1", errs.ErrValidation)
	ErrInsufficientStock = errs.Class("insufficient stock", errs.ErrConflict)
	ErrOrderNotFound     = errs.Class("order not found", errs.ErrNotFound)
)

// StockError names the product that could not be fulfilled.
type StockError struct {
	ProductID   uuid.UUID
	ProductName string
}

func NewStockError(productID uuid.UUID, productName string) *StockError {
	if productName == "" {
		productName = productID.String()
	}
	return &StockError{ProductID: productID, ProductName: productName}
}

func (e *StockError) Error() string {
	return "Insufficient stock for " + e.ProductName
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

type Customer struct {
	name  string
	phone string
	email *string
}

func NewCustomer(name, phone string, email *string) (Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return Customer{}, ErrMissingFields
	}
	var e *string
	if email != nil {
		if v := strings.TrimSpace(*email); v != "" {
			e = &v
		}
	}
	return Customer{name: name, phone: phone, email: e}, nil
}

func ReconstructCustomer(name, phone string, email *string) Customer {
	return Customer{name: name, phone: phone, email: email}
}

func (c Customer) Name() string   { return c.name }
func (c Customer) Phone() string  { return c.phone }
func (c Customer) Email() *string { return c.email }
