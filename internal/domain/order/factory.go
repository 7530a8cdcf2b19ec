package order

import (
	"math"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/payment"
	"click-collect/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Factory struct {
	Clock clock.Clock
	Codes CodeGenerator
}

func NewFactory(clock clock.Clock, codes CodeGenerator) *Factory {
	return &Factory{
		Clock: clock,
		Codes: codes,
	}
}

// Line is a requested quantity of a loaded product.
type Line struct {
	Product  *catalog.Product
	Quantity int
}

type PlaceParams struct {
	UserID        *uuid.UUID
	Customer      Customer
	PickupSlotID  uuid.UUID
	PaymentMethod payment.Method
	Notes         *string
	Lines         []Line
}

// MergeLines folds repeated products into one line, keeping first-seen order.
// A merged quantity that would not fit in an int is rejected.
func MergeLines(productIDs []uuid.UUID, quantities []int) ([]uuid.UUID, map[uuid.UUID]int, error) {
	order := make([]uuid.UUID, 0, len(productIDs))
	qty := make(map[uuid.UUID]int, len(productIDs))
	for i, id := range productIDs {
		q := quantities[i]
		if q < 1 {
			return nil, nil, ErrInvalidQuantity
		}
		if _, seen := qty[id]; !seen {
			order = append(order, id)
		}
		if qty[id] > math.MaxInt-q {
			return nil, nil, ErrInvalidQuantity
		}
		qty[id] += q
	}
	return order, qty, nil
}

// Place checks stock against the loaded products and builds a paid order.
// It does not touch storage; the caller applies the guarded decrements.
func (f *Factory) Place(p PlaceParams) (*Order, error) {
	if p.PickupSlotID == uuid.Nil {
		return nil, ErrMissingFields
	}
	if len(p.Lines) == 0 {
		return nil, ErrEmptyOrder
	}

	now := f.Clock.Now()
	orderID := uuid.New()
	items := make([]*Item, 0, len(p.Lines))
	amount := decimal.Zero
	anyPerishable := false

	for _, line := range p.Lines {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		prod := line.Product
		if !prod.CanFulfil(line.Quantity) {
			return nil, NewStockError(prod.ID(), prod.Name())
		}
		subtotal := prod.Price().Mul(decimal.NewFromInt(int64(line.Quantity)))
		amount = amount.Add(subtotal)
		anyPerishable = anyPerishable || prod.IsPerishable()
		items = append(items, &Item{
			id:           uuid.New(),
			orderID:      orderID,
			productID:    prod.ID(),
			productName:  prod.Name(),
			productPrice: prod.Price(),
			quantity:     line.Quantity,
			subtotal:     subtotal,
		})
	}

	number, err := f.Codes.OrderNumber(now)
	if err != nil {
		return nil, err
	}
	pickupCode, err := f.Codes.PickupCode()
	if err != nil {
		return nil, err
	}

	return &Order{
		id:              orderID,
		orderNumber:     number,
		userID:          p.UserID,
		customer:        p.Customer,
		pickupSlotID:    p.PickupSlotID,
		status:          StatusPaid,
		amount:          amount,
		currency:        Currency,
		paymentMethod:   p.PaymentMethod,
		paymentProvider: p.PaymentMethod.Provider(),
		tempPickupCode:  pickupCode,
		notes:           p.Notes,
		expiresAt:       now.Add(HoldFor(anyPerishable)),
		createdAt:       now,
		items:           items,
	}, nil
}
