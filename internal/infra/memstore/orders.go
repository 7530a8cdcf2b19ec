package memstore

import (
	"context"
	"sort"

	"click-collect/internal/domain/order"
	"click-collect/internal/domain/slot"
	"click-collect/internal/infra"

	"github.com/google/uuid"
)

type slotRepo struct{ v *view }

func (r slotRepo) Create(_ context.Context, s *slot.PickupSlot) (err error) {
	r.v.do(func() {
		if _, ok := r.v.s.slots[s.ID()]; ok {
			err = infra.NewRepoErr(infra.KindDuplicateKey, "pickup slot already exists", nil)
			return
		}
		put(r.v.j, r.v.s.slots, s.ID(), *s)
	})
	return err
}

func (r slotRepo) FindByID(_ context.Context, id uuid.UUID) (found *slot.PickupSlot, err error) {
	r.v.do(func() {
		s, ok := r.v.s.slots[id]
		if !ok {
			err = infra.NewRepoErr(infra.KindNotFound, "pickup slot not found", nil)
			return
		}
		found = &s
	})
	return found, err
}

func (r slotRepo) ListActive(_ context.Context, date *string) ([]*slot.PickupSlot, error) {
	slots := []*slot.PickupSlot{}
	r.v.do(func() {
		for _, s := range r.v.s.slots {
			if !s.IsActive() || (date != nil && s.Date() != *date) {
				continue
			}
			slots = append(slots, &s)
		}
	})
	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	return slots, nil
}

func (r slotRepo) Reserve(_ context.Context, id uuid.UUID) (err error) {
	r.v.do(func() {
		s, ok := r.v.s.slots[id]
		if !ok || s.Reserve() != nil {
			err = infra.NewRepoErr(infra.KindConflict, "pickup slot unavailable", nil)
			return
		}
		put(r.v.j, r.v.s.slots, id, s)
	})
	return err
}

type orderRepo struct{ v *view }

func (r orderRepo) Create(_ context.Context, o *order.Order) (err error) {
	r.v.do(func() {
		if _, ok := r.v.s.slots[o.PickupSlotID()]; !ok {
			err = infra.NewRepoErr(infra.KindForeignKeyViolated, "pickup slot does not exist", nil)
			return
		}
		for id, other := range r.v.s.orders {
			if id == o.ID() || other.OrderNumber() == o.OrderNumber() {
				err = infra.NewRepoErr(infra.KindDuplicateKey, "order number taken", nil)
				return
			}
		}
		put(r.v.j, r.v.s.orders, o.ID(), *o)
	})
	return err
}

func (r orderRepo) FindByID(_ context.Context, id uuid.UUID) (found *order.Order, err error) {
	r.v.do(func() {
		o, ok := r.v.s.orders[id]
		if !ok {
			err = infra.NewRepoErr(infra.KindNotFound, "order not found", nil)
			return
		}
		found = &o
	})
	return found, err
}

func (r orderRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*order.Order, error) {
	orders := []*order.Order{}
	r.v.do(func() {
		for _, o := range r.v.s.orders {
			if o.BelongsTo(userID) {
				orders = append(orders, &o)
			}
		}
	})
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt().Equal(orders[j].CreatedAt()) {
			return orders[i].CreatedAt().After(orders[j].CreatedAt())
		}
		return orders[i].ID().String() < orders[j].ID().String()
	})
	return orders, nil
}
