package queries

import (
	"context"

	"click-collect/internal/domain/cart"
	"click-collect/internal/domain/order"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/queries/cart_mock.go -package=queriesmock

type CartQueries interface {
	// Get returns an empty cart when owner is nil.
	Get(ctx context.Context, owner *cart.Owner) (*CartView, error)
}

type cartQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCartQueries(uow shared.UnitOfWork) CartQueries {
	return &cartQueriesImpl{uow: uow}
}

func (q *cartQueriesImpl) Get(ctx context.Context, owner *cart.Owner) (*CartView, error) {
	view := &CartView{Items: []*CartLineView{}, Total: decimal.Zero, Currency: order.Currency}
	if owner == nil {
		return view, nil
	}

	reads := q.uow.Reads()
	items, err := reads.Carts().ListItems(ctx, *owner)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ProductID()
	}
	products, err := productsByID(ctx, reads.Products(), ids)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		p, ok := products[it.ProductID()]
		if !ok {
			continue
		}
		subtotal := p.Price().Mul(decimal.NewFromInt(int64(it.Quantity())))
		view.Items = append(view.Items, &CartLineView{
			ID:        it.ID(),
			ProductID: p.ID(),
			Name:      p.Name(),
			Price:     p.Price(),
			Quantity:  it.Quantity(),
			ImageURL:  p.Thumbnail(),
			Subtotal:  subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}
