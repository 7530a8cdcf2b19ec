package commands

import (
	"context"
	"log/slog"
	"strings"

	"click-collect/internal/domain/cart"
	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/order"
	"click-collect/internal/domain/payment"
	"click-collect/internal/domain/slot"
	"click-collect/internal/infra"
	"click-collect/internal/pkg/errs"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order_mock.go -package=commandsmock

var (
	ErrOrderForbidden = errs.Class("order belongs to another customer", errs.ErrForbidden)
	ErrNoEmail        = errs.Class("no email address available", errs.ErrValidation)
)

type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

type PlaceOrderInput struct {
	// UserID and UserEmail come from the session, when there is one.
	UserID        *uuid.UUID
	UserEmail     string
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	PickupSlotID  uuid.UUID
	PaymentMethod string
	Notes         *string
	Items         []OrderLineInput
}

type PlaceOrderResult struct {
	OrderID     uuid.UUID
	OrderNumber string
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error)
	ResendConfirmation(ctx context.Context, orderID, userID uuid.UUID, userEmail string) error
}

type orderCommandsImpl struct {
	uow        shared.UnitOfWork
	factory    *order.Factory
	cache      shared.CatalogCache
	notifier   Notifier
	dispatcher Dispatcher
}

func NewOrderCommands(uow shared.UnitOfWork, factory *order.Factory, cache shared.CatalogCache, notifier Notifier, dispatcher Dispatcher) OrderCommands {
	return &orderCommandsImpl{
		uow:        uow,
		factory:    factory,
		cache:      cache,
		notifier:   notifier,
		dispatcher: dispatcher,
	}
}

// PlaceOrder validates the request, then in one transaction takes stock for
// every line, takes one place in the pickup slot and stores the order.
// Any failure leaves stock, slot and orders untouched.
func (uc *orderCommandsImpl) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error) {
	customer, err := order.NewCustomer(in.CustomerName, in.CustomerPhone, in.CustomerEmail)
	if err != nil {
		return nil, err
	}
	if in.PickupSlotID == uuid.Nil {
		return nil, order.ErrMissingFields
	}
	if len(in.Items) == 0 {
		return nil, order.ErrEmptyOrder
	}
	productIDs := make([]uuid.UUID, len(in.Items))
	quantities := make([]int, len(in.Items))
	for i, it := range in.Items {
		if it.Quantity < 1 {
			return nil, order.ErrInvalidQuantity
		}
		productIDs[i] = it.ProductID
		quantities[i] = it.Quantity
	}
	method := payment.MethodMomo
	if strings.TrimSpace(in.PaymentMethod) != "" {
		if method, err = payment.ParseMethod(in.PaymentMethod); err != nil {
			return nil, err
		}
	}

	ids, qty, err := order.MergeLines(productIDs, quantities)
	if err != nil {
		return nil, err
	}

	var (
		placed *order.Order
		pickup *slot.PickupSlot
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		products, err := tx.Products().FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]*catalog.Product, len(products))
		for _, p := range products {
			byID[p.ID()] = p
		}

		lines := make([]order.Line, 0, len(ids))
		for _, id := range ids {
			p, ok := byID[id]
			if !ok {
				return order.NewStockError(id, "")
			}
			lines = append(lines, order.Line{Product: p, Quantity: qty[id]})
		}

		o, err := uc.factory.Place(order.PlaceParams{
			UserID:        in.UserID,
			Customer:      customer,
			PickupSlotID:  in.PickupSlotID,
			PaymentMethod: method,
			Notes:         in.Notes,
			Lines:         lines,
		})
		if err != nil {
			return err
		}

		s, err := tx.Slots().FindByID(ctx, in.PickupSlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return slot.ErrSlotNotFound
			}
			return err
		}

		for _, it := range o.Items() {
			if err := tx.Products().DecrementStock(ctx, it.ProductID(), it.Quantity()); err != nil {
				if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindNotFound) {
					return order.NewStockError(it.ProductID(), it.ProductName())
				}
				return err
			}
		}
		if err := tx.Slots().Reserve(ctx, s.ID()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return slot.ErrSlotUnavailable
			}
			return err
		}
		if err := tx.Orders().Create(ctx, o); err != nil {
			return err
		}

		placed, pickup = o, s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	if in.UserID != nil {
		uc.clearCart(ctx, *in.UserID)
	}
	uc.notifyPlaced(ctx, placed, pickup, in.UserEmail)

	return &PlaceOrderResult{OrderID: placed.ID(), OrderNumber: placed.OrderNumber()}, nil
}

func (uc *orderCommandsImpl) ResendConfirmation(ctx context.Context, orderID, userID uuid.UUID, userEmail string) error {
	reads := uc.uow.Reads()
	o, err := reads.Orders().FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return order.ErrOrderNotFound
		}
		return err
	}
	if o.UserID() != nil && !o.BelongsTo(userID) {
		return ErrOrderForbidden
	}
	to := recipient(o, userEmail)
	if to == "" {
		return ErrNoEmail
	}
	s, err := reads.Slots().FindByID(ctx, o.PickupSlotID())
	if err != nil {
		return err
	}

	if err := uc.notifier.OrderConfirmationEmail(ctx, to, confirmationOf(o, s)); err != nil {
		return errs.Mark(errs.Wrap(err, "order confirmation email"), ErrNotificationFailed)
	}
	return nil
}

func (uc *orderCommandsImpl) clearCart(ctx context.Context, userID uuid.UUID) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Carts().Clear(ctx, cart.UserOwner(userID))
	})
	if err != nil {
		slog.Warn("failed to clear cart after checkout", "user_id", userID, "error", err.Error())
	}
}

func (uc *orderCommandsImpl) notifyPlaced(ctx context.Context, o *order.Order, s *slot.PickupSlot, userEmail string) {
	c := confirmationOf(o, s)
	if to := recipient(o, userEmail); to != "" {
		uc.dispatcher.Go(ctx, "order_confirmation_email", func(ctx context.Context) error {
			return uc.notifier.OrderConfirmationEmail(ctx, to, c)
		})
	}
	phone := o.Customer().Phone()
	uc.dispatcher.Go(ctx, "order_confirmation_sms", func(ctx context.Context) error {
		return uc.notifier.OrderConfirmationSMS(ctx, phone, c)
	})
}

// recipient prefers the address given at checkout over the account's.
func recipient(o *order.Order, userEmail string) string {
	if e := o.Customer().Email(); e != nil && *e != "" {
		return *e
	}
	return strings.TrimSpace(userEmail)
}

func confirmationOf(o *order.Order, s *slot.PickupSlot) OrderConfirmation {
	lines := make([]ConfirmationLine, len(o.Items()))
	for i, it := range o.Items() {
		lines[i] = ConfirmationLine{Name: it.ProductName(), Quantity: it.Quantity(), Subtotal: it.Subtotal()}
	}
	return OrderConfirmation{
		OrderNumber:  o.OrderNumber(),
		CustomerName: o.Customer().Name(),
		Items:        lines,
		Amount:       o.Amount(),
		Currency:     o.Currency(),
		PickupCode:   o.TempPickupCode(),
		PickupDate:   s.Date(),
		PickupFrom:   s.TimeFrom(),
		PickupTo:     s.TimeTo(),
		ExpiresAt:    o.ExpiresAt(),
	}
}
