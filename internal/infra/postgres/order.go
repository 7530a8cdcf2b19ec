package postgres

import (
	"context"

	"click-collect/internal/domain/order"
	"click-collect/internal/domain/payment"
	"click-collect/internal/domain/slot"
	"click-collect/internal/infra"
	sqlc "click-collect/internal/infra/sqlc/generated"
	"click-collect/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotQueries interface {
	CreatePickupSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePickupSlotParams) error
	GetPickupSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PickupSlots, error)
	ListActivePickupSlots(ctx context.Context, db sqlc.DBTX, date pgtype.Text) ([]sqlc.PickupSlots, error)
	ReservePickupSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SlotRepository struct {
	queries SlotQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.PickupSlot) error {
	err := r.queries.CreatePickupSlot(ctx, r.db, sqlc.CreatePickupSlotParams{
		ID:        s.ID(),
		Date:      s.Date(),
		TimeFrom:  s.TimeFrom(),
		TimeTo:    s.TimeTo(),
		Capacity:  int32(s.Capacity()),  // #nosec G115
		Remaining: int32(s.Remaining()), // #nosec G115
		IsActive:  s.IsActive(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create pickup slot", err)
	}
	return nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.PickupSlot, error) {
	row, err := r.queries.GetPickupSlot(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pickup slot", err)
	}
	return toPickupSlot(row), nil
}

func (r *SlotRepository) ListActive(ctx context.Context, date *string) ([]*slot.PickupSlot, error) {
	rows, err := r.queries.ListActivePickupSlots(ctx, r.db, pgconv.StringPtrToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pickup slots", err)
	}
	slots := make([]*slot.PickupSlot, len(rows))
	for i, row := range rows {
		slots[i] = toPickupSlot(row)
	}
	return slots, nil
}

func (r *SlotRepository) Reserve(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.ReservePickupSlot(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve pickup slot", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindConflict, "pickup slot unavailable", nil)
	}
	return nil
}

func toPickupSlot(row sqlc.PickupSlots) *slot.PickupSlot {
	return slot.ReconstructPickupSlot(row.ID, row.Date, row.TimeFrom, row.TimeTo, int(row.Capacity), int(row.Remaining), row.IsActive)
}

type OrderQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	GetOrder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrdersByUser(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) ([]sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderIds []uuid.UUID) ([]sqlc.OrderItems, error)
}

type OrderRepository struct {
	queries OrderQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	c := o.Customer()
	err := r.queries.CreateOrder(ctx, r.db, sqlc.CreateOrderParams{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber(),
		UserID:          pgconv.UUIDPtrToPgtype(o.UserID()),
		CustomerName:    c.Name(),
		CustomerPhone:   c.Phone(),
		CustomerEmail:   pgconv.StringPtrToPgtype(c.Email()),
		PickupSlotID:    o.PickupSlotID(),
		Status:          o.Status().String(),
		Amount:          pgconv.DecimalToNumeric(o.Amount()),
		Currency:        o.Currency(),
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentProvider: o.PaymentProvider(),
		TempPickupCode:  o.TempPickupCode(),
		FinalPickupCode: pgconv.StringPtrToPgtype(o.FinalPickupCode()),
		Notes:           pgconv.StringPtrToPgtype(o.Notes()),
		ExpiresAt:       pgconv.TimeToPgtype(o.ExpiresAt()),
		CreatedAt:       pgconv.TimeToPgtype(o.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, it := range o.Items() {
		err := r.queries.CreateOrderItem(ctx, r.db, sqlc.CreateOrderItemParams{
			ID:           it.ID(),
			OrderID:      o.ID(),
			ProductID:    it.ProductID(),
			ProductName:  it.ProductName(),
			ProductPrice: pgconv.DecimalToNumeric(it.ProductPrice()),
			Quantity:     int32(it.Quantity()), // #nosec G115
			Subtotal:     pgconv.DecimalToNumeric(it.Subtotal()),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrder(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	orders, err := r.withItems(ctx, []sqlc.Orders{row})
	if err != nil {
		return nil, err
	}
	return orders[0], nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error) {
	rows, err := r.queries.ListOrdersByUser(ctx, r.db, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return r.withItems(ctx, rows)
}

// withItems loads the lines of all given orders in one query.
func (r *OrderRepository) withItems(ctx context.Context, rows []sqlc.Orders) ([]*order.Order, error) {
	if len(rows) == 0 {
		return []*order.Order{}, nil
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	itemRows, err := r.queries.ListOrderItems(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	byOrder := make(map[uuid.UUID][]*order.Item, len(rows))
	for _, ir := range itemRows {
		price, err := pgconv.DecimalFromNumeric(ir.ProductPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert order item row", err)
		}
		subtotal, err := pgconv.DecimalFromNumeric(ir.Subtotal)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert order item row", err)
		}
		byOrder[ir.OrderID] = append(byOrder[ir.OrderID],
			order.ReconstructItem(ir.ID, ir.OrderID, ir.ProductID, ir.ProductName, price, int(ir.Quantity), subtotal))
	}

	orders := make([]*order.Order, len(rows))
	for i, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert order row", err)
		}
		items := byOrder[row.ID]
		if items == nil {
			items = []*order.Item{}
		}
		orders[i] = order.Reconstruct(order.Snapshot{
			ID:              row.ID,
			OrderNumber:     row.OrderNumber,
			UserID:          pgconv.UUIDPtrFromPgtype(row.UserID),
			Customer:        order.ReconstructCustomer(row.CustomerName, row.CustomerPhone, pgconv.StringPtrFromPgtype(row.CustomerEmail)),
			PickupSlotID:    row.PickupSlotID,
			Status:          order.Status(row.Status),
			Amount:          amount,
			Currency:        row.Currency,
			PaymentMethod:   payment.Method(row.PaymentMethod),
			PaymentProvider: row.PaymentProvider,
			TempPickupCode:  row.TempPickupCode,
			FinalPickupCode: pgconv.StringPtrFromPgtype(row.FinalPickupCode),
			Notes:           pgconv.StringPtrFromPgtype(row.Notes),
			ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			Items:           items,
		})
	}
	return orders, nil
}
