package commands

import (
	"context"

	"click-collect/internal/domain/cart"
	"click-collect/internal/infra"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart_mock.go -package=commandsmock

type CartCommands interface {
	// AddItem merges into an existing line for the same product.
	AddItem(ctx context.Context, owner cart.Owner, productID uuid.UUID, quantity int) (uuid.UUID, error)
	UpdateItem(ctx context.Context, owner cart.Owner, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, owner cart.Owner, itemID uuid.UUID) error
	Clear(ctx context.Context, owner cart.Owner) error
}

type cartCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, clk clock.Clock) CartCommands {
	return &cartCommandsImpl{uow: uow, clock: clk}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, owner cart.Owner, productID uuid.UUID, quantity int) (uuid.UUID, error) {
	if quantity < 1 {
		return uuid.Nil, cart.ErrInvalidQuantity
	}

	var itemID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := loadProduct(ctx, tx.Products(), productID); err != nil {
			return err
		}

		item, err := tx.Carts().FindItemByProduct(ctx, owner, productID)
		switch {
		case err == nil:
			if err := item.Add(quantity); err != nil {
				return err
			}
		case infra.IsKind(err, infra.KindNotFound):
			item, err = cart.NewItem(owner, productID, quantity, c.clock.Now())
			if err != nil {
				return err
			}
		default:
			return err
		}

		itemID = item.ID()
		return tx.Carts().SaveItem(ctx, item)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return itemID, nil
}

func (c *cartCommandsImpl) UpdateItem(ctx context.Context, owner cart.Owner, itemID uuid.UUID, quantity int) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := ownedItem(ctx, tx.Carts(), owner, itemID)
		if err != nil {
			return err
		}
		if err := item.SetQuantity(quantity); err != nil {
			return err
		}
		return tx.Carts().SaveItem(ctx, item)
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, owner cart.Owner, itemID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := ownedItem(ctx, tx.Carts(), owner, itemID); err != nil {
			return err
		}
		if err := tx.Carts().RemoveItem(ctx, itemID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return cart.ErrItemNotFound
			}
			return err
		}
		return nil
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context, owner cart.Owner) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Carts().Clear(ctx, owner)
	})
}

// ownedItem reports another owner's item as missing.
func ownedItem(ctx context.Context, carts shared.CartRepository, owner cart.Owner, itemID uuid.UUID) (*cart.Item, error) {
	item, err := carts.FindItem(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, err
	}
	if !owner.Owns(item) {
		return nil, cart.ErrItemNotFound
	}
	return item, nil
}
