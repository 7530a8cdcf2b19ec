package queries

import (
	"context"

	"click-collect/internal/domain/order"
	"click-collect/internal/domain/slot"
	"click-collect/internal/infra"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order_mock.go -package=queriesmock

type OrderQueries interface {
	// GetByID is open to anyone holding the id.
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewOrderQueries(uow shared.UnitOfWork) OrderQueries {
	return &orderQueriesImpl{uow: uow}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	reads := q.uow.Reads()
	o, err := reads.Orders().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, err
	}
	s, err := reads.Slots().FindByID(ctx, o.PickupSlotID())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	return toOrderView(o, s), nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error) {
	reads := q.uow.Reads()
	orders, err := reads.Orders().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	slots := map[uuid.UUID]*slot.PickupSlot{}
	out := make([]*OrderView, len(orders))
	for i, o := range orders {
		s, ok := slots[o.PickupSlotID()]
		if !ok {
			s, err = reads.Slots().FindByID(ctx, o.PickupSlotID())
			if err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return nil, err
			}
			slots[o.PickupSlotID()] = s
		}
		out[i] = toOrderView(o, s)
	}
	return out, nil
}

type SlotQueries interface {
	// ListActive filters by date when given; the date must be YYYY-MM-DD.
	ListActive(ctx context.Context, date string) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewSlotQueries(uow shared.UnitOfWork) SlotQueries {
	return &slotQueriesImpl{uow: uow}
}

func (q *slotQueriesImpl) ListActive(ctx context.Context, date string) ([]*SlotView, error) {
	var filter *string
	if date != "" {
		if _, err := slot.ParseDate(date); err != nil {
			return nil, err
		}
		filter = &date
	}
	slots, err := q.uow.Reads().Slots().ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*SlotView, len(slots))
	for i, s := range slots {
		out[i] = toSlotView(s)
	}
	return out, nil
}
