//go:build unit || e2e

package builder

import (
	"time"

	"click-collect/internal/domain/order"
	"click-collect/internal/domain/slot"
	reqdto "click-collect/internal/handler/dto/request"
	"click-collect/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SlotBuilder struct {
	Date     string
	TimeFrom string
	TimeTo   string
	Capacity int
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		Date:     "2026-03-02",
		TimeFrom: "10:00",
		TimeTo:   "12:00",
		Capacity: 20,
	}
}

func (s *SlotBuilder) BuildDomain() (*slot.PickupSlot, error) {
	return slot.NewPickupSlot(s.Date, s.TimeFrom, s.TimeTo, s.Capacity)
}

func (s *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:        uuid.New(),
		Date:      s.Date,
		TimeFrom:  s.TimeFrom,
		TimeTo:    s.TimeTo,
		Capacity:  s.Capacity,
		Remaining: s.Capacity,
		IsActive:  true,
	}
}

func (s *SlotBuilder) WithDate(date string) *SlotBuilder {
	s.Date = date
	return s
}

func (s *SlotBuilder) WithWindow(from, to string) *SlotBuilder {
	s.TimeFrom = from
	s.TimeTo = to
	return s
}

func (s *SlotBuilder) WithCapacity(capacity int) *SlotBuilder {
	s.Capacity = capacity
	return s
}

type OrderBuilder struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	PickupSlotID  uuid.UUID
	PaymentMethod string
	Lines         []reqdto.OrderLineRequest
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	email := "amina@example.com"
	return &OrderBuilder{
		CustomerName:  "Amina Mabiala",
		CustomerPhone: "+242 06 123 4567",
		CustomerEmail: &email,
		PickupSlotID:  uuid.New(),
		PaymentMethod: "momo",
		Lines:         []reqdto.OrderLineRequest{{ProductID: uuid.New(), Quantity: 2}},
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) BuildDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: o.CustomerEmail,
		PickupSlotID:  o.PickupSlotID,
		PaymentMethod: o.PaymentMethod,
		Items:         o.Lines,
	}
}

// BuildView prices every line at 1000.
func (o *OrderBuilder) BuildView() *queries.OrderView {
	id := uuid.New()
	items := make([]*queries.OrderItemView, len(o.Lines))
	amount := decimal.Zero
	for i, l := range o.Lines {
		subtotal := decimal.NewFromInt(int64(1000 * l.Quantity))
		amount = amount.Add(subtotal)
		items[i] = &queries.OrderItemView{
			ID:           uuid.New(),
			ProductID:    l.ProductID,
			ProductName:  "Produit",
			ProductPrice: decimal.NewFromInt(1000),
			Quantity:     l.Quantity,
			Subtotal:     subtotal,
		}
	}
	return &queries.OrderView{
		ID:              id,
		OrderNumber:     "GC-1772355600000-AB12CD",
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		PickupSlotID:    o.PickupSlotID,
		Status:          order.StatusPaid.String(),
		Amount:          amount,
		Currency:        order.Currency,
		PaymentMethod:   o.PaymentMethod,
		PaymentProvider: "MTN Mobile Money",
		TempPickupCode:  "K7P2QX9M",
		ExpiresAt:       o.CreatedAt.Add(order.StandardHold),
		CreatedAt:       o.CreatedAt,
		Items:           items,
	}
}

func (o *OrderBuilder) WithSlot(id uuid.UUID) *OrderBuilder {
	o.PickupSlotID = id
	return o
}

func (o *OrderBuilder) WithLine(productID uuid.UUID, qty int) *OrderBuilder {
	o.Lines = append(o.Lines, reqdto.OrderLineRequest{ProductID: productID, Quantity: qty})
	return o
}

func (o *OrderBuilder) WithLines(lines ...reqdto.OrderLineRequest) *OrderBuilder {
	o.Lines = lines
	return o
}

func (o *OrderBuilder) WithPaymentMethod(m string) *OrderBuilder {
	o.PaymentMethod = m
	return o
}

func (o *OrderBuilder) AsGuestWithoutEmail() *OrderBuilder {
	o.CustomerEmail = nil
	return o
}
