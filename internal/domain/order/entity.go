package order

import (
	"time"

	"click-collect/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	id              uuid.UUID
	orderNumber     string
	userID          *uuid.UUID
	customer        Customer
	pickupSlotID    uuid.UUID
	status          Status
	amount          decimal.Decimal
	currency        string
	paymentMethod   payment.Method
	paymentProvider string
	tempPickupCode  string
	finalPickupCode *string
	notes           *string
	expiresAt       time.Time
	createdAt       time.Time
	items           []*Item
}

// Item is an immutable snapshot of a product line at order time.
type Item struct {
	id           uuid.UUID
	orderID      uuid.UUID
	productID    uuid.UUID
	productName  string
	productPrice decimal.Decimal
	quantity     int
	subtotal     decimal.Decimal
}

type Snapshot struct {
	ID              uuid.UUID
	OrderNumber     string
	UserID          *uuid.UUID
	Customer        Customer
	PickupSlotID    uuid.UUID
	Status          Status
	Amount          decimal.Decimal
	Currency        string
	PaymentMethod   payment.Method
	PaymentProvider string
	TempPickupCode  string
	FinalPickupCode *string
	Notes           *string
	ExpiresAt       time.Time
	CreatedAt       time.Time
	Items           []*Item
}

func Reconstruct(s Snapshot) *Order {
	return &Order{
		id:              s.ID,
		orderNumber:     s.OrderNumber,
		userID:          s.UserID,
		customer:        s.Customer,
		pickupSlotID:    s.PickupSlotID,
		status:          s.Status,
		amount:          s.Amount,
		currency:        s.Currency,
		paymentMethod:   s.PaymentMethod,
		paymentProvider: s.PaymentProvider,
		tempPickupCode:  s.TempPickupCode,
		finalPickupCode: s.FinalPickupCode,
		notes:           s.Notes,
		expiresAt:       s.ExpiresAt,
		createdAt:       s.CreatedAt,
		items:           s.Items,
	}
}

func ReconstructItem(id, orderID, productID uuid.UUID, productName string, productPrice decimal.Decimal, quantity int, subtotal decimal.Decimal) *Item {
	return &Item{
		id:           id,
		orderID:      orderID,
		productID:    productID,
		productName:  productName,
		productPrice: productPrice,
		quantity:     quantity,
		subtotal:     subtotal,
	}
}

func (o *Order) ID() uuid.UUID                 { return o.id }
func (o *Order) OrderNumber() string           { return o.orderNumber }
func (o *Order) UserID() *uuid.UUID            { return o.userID }
func (o *Order) Customer() Customer            { return o.customer }
func (o *Order) PickupSlotID() uuid.UUID       { return o.pickupSlotID }
func (o *Order) Status() Status                { return o.status }
func (o *Order) Amount() decimal.Decimal       { return o.amount }
func (o *Order) Currency() string              { return o.currency }
func (o *Order) PaymentMethod() payment.Method { return o.paymentMethod }
func (o *Order) PaymentProvider() string       { return o.paymentProvider }
func (o *Order) TempPickupCode() string        { return o.tempPickupCode }
func (o *Order) FinalPickupCode() *string      { return o.finalPickupCode }
func (o *Order) Notes() *string                { return o.notes }
func (o *Order) ExpiresAt() time.Time          { return o.expiresAt }
func (o *Order) CreatedAt() time.Time          { return o.createdAt }
func (o *Order) Items() []*Item                { return o.items }

// BelongsTo is false for guest orders.
func (o *Order) BelongsTo(userID uuid.UUID) bool {
	return o.userID != nil && *o.userID == userID
}

func (i *Item) ID() uuid.UUID                 { return i.id }
func (i *Item) OrderID() uuid.UUID            { return i.orderID }
func (i *Item) ProductID() uuid.UUID          { return i.productID }
func (i *Item) ProductName() string           { return i.productName }
func (i *Item) ProductPrice() decimal.Decimal { return i.productPrice }
func (i *Item) Quantity() int                 { return i.quantity }
func (i *Item) Subtotal() decimal.Decimal     { return i.subtotal }
