package response

import (
	"time"

	"github.com/google/uuid"
)

type CartLineResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Quantity  int       `json:"quantity"`
	ImageURL  string    `json:"imageUrl"`
	Subtotal  string    `json:"subtotal"`
}

type CartResponse struct {
	Items    []*CartLineResponse `json:"items"`
	Total    string              `json:"total"`
	Currency string              `json:"currency"`
}

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	TimeFrom  string    `json:"timeFrom"`
	TimeTo    string    `json:"timeTo"`
	Capacity  int       `json:"capacity"`
	Remaining int       `json:"remaining"`
	IsActive  bool      `json:"isActive"`
}

type OrderItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName"`
	ProductPrice string    `json:"productPrice"`
	Quantity     int       `json:"quantity"`
	Subtotal     string    `json:"subtotal"`
}

type OrderResponse struct {
	ID              uuid.UUID            `json:"id"`
	OrderNumber     string               `json:"orderNumber"`
	UserID          *uuid.UUID           `json:"userId"`
	CustomerName    string               `json:"customerName"`
	CustomerPhone   string               `json:"customerPhone"`
	CustomerEmail   *string              `json:"customerEmail"`
	PickupSlotID    uuid.UUID            `json:"pickupSlotId"`
	Status          string               `json:"status"`
	Amount          string               `json:"amount"`
	Currency        string               `json:"currency"`
	PaymentMethod   string               `json:"paymentMethod"`
	PaymentProvider string               `json:"paymentProvider"`
	TempPickupCode  string               `json:"tempPickupCode"`
	FinalPickupCode *string              `json:"finalPickupCode"`
	Notes           *string              `json:"notes"`
	ExpiresAt       time.Time            `json:"expiresAt"`
	CreatedAt       time.Time            `json:"createdAt"`
	Items           []*OrderItemResponse `json:"items"`
	PickupSlot      *SlotResponse        `json:"pickupSlot"`
}

type PaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
	Provider   string `json:"provider"`
}

type PolicyResponse struct {
	ExpirationPolicy    string `json:"expirationPolicy"`
	PerishableExpiry    int    `json:"perishableExpiry"`
	NonPerishableExpiry int    `json:"nonPerishableExpiry"`
}
