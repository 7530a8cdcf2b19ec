package memstore

import (
	"context"
	"sort"

	"click-collect/internal/domain/cart"
	"click-collect/internal/infra"

	"github.com/google/uuid"
)

type cartRepo struct{ v *view }

func (r cartRepo) ListItems(_ context.Context, owner cart.Owner) ([]*cart.Item, error) {
	items := []*cart.Item{}
	r.v.do(func() {
		for _, it := range r.v.s.cartItems {
			if owner.Owns(&it) {
				items = append(items, &it)
			}
		}
	})
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt().Equal(items[j].CreatedAt()) {
			return items[i].CreatedAt().Before(items[j].CreatedAt())
		}
		return items[i].ID().String() < items[j].ID().String()
	})
	return items, nil
}

func (r cartRepo) FindItem(_ context.Context, id uuid.UUID) (found *cart.Item, err error) {
	r.v.do(func() {
		it, ok := r.v.s.cartItems[id]
		if !ok {
			err = infra.NewRepoErr(infra.KindNotFound, "cart item not found", nil)
			return
		}
		found = &it
	})
	return found, err
}

func (r cartRepo) FindItemByProduct(_ context.Context, owner cart.Owner, productID uuid.UUID) (found *cart.Item, err error) {
	r.v.do(func() {
		for _, it := range r.v.s.cartItems {
			if it.ProductID() == productID && owner.Owns(&it) {
				found = &it
				return
			}
		}
		err = infra.NewRepoErr(infra.KindNotFound, "cart item not found", nil)
	})
	return found, err
}

func (r cartRepo) SaveItem(_ context.Context, item *cart.Item) (err error) {
	r.v.do(func() {
		if _, ok := r.v.s.products[item.ProductID()]; !ok {
			err = infra.NewRepoErr(infra.KindForeignKeyViolated, "product does not exist", nil)
			return
		}
		put(r.v.j, r.v.s.cartItems, item.ID(), *item)
	})
	return err
}

func (r cartRepo) RemoveItem(_ context.Context, id uuid.UUID) (err error) {
	r.v.do(func() {
		if !remove(r.v.j, r.v.s.cartItems, id) {
			err = infra.NewRepoErr(infra.KindNotFound, "cart item not found", nil)
		}
	})
	return err
}

func (r cartRepo) Clear(_ context.Context, owner cart.Owner) error {
	r.v.do(func() {
		for id, it := range r.v.s.cartItems {
			if owner.Owns(&it) {
				remove(r.v.j, r.v.s.cartItems, id)
			}
		}
	})
	return nil
}
