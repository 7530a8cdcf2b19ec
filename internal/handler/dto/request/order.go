package request

import (
	"click-collect/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=10000"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10000"`
}

type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=10000"`
}

// CreateOrderRequest leaves required-field checks to the order command,
// which reports them all under one message.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	CustomerEmail *string            `json:"customerEmail,omitempty" binding:"omitempty,email"`
	PickupSlotID  uuid.UUID          `json:"pickupSlotId"`
	PaymentMethod string             `json:"paymentMethod"`
	Notes         *string            `json:"notes,omitempty" binding:"omitempty,max=500"`
	Items         []OrderLineRequest `json:"items" binding:"dive"`
}

func (r *CreateOrderRequest) ToInput(userID *uuid.UUID, userEmail string) commands.PlaceOrderInput {
	items := make([]commands.OrderLineInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.OrderLineInput{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return commands.PlaceOrderInput{
		UserID:        userID,
		UserEmail:     userEmail,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		PickupSlotID:  r.PickupSlotID,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
		Items:         items,
	}
}

type InitiatePaymentRequest struct {
	OrderID string `json:"orderId"`
	Method  string `json:"method"`
}
