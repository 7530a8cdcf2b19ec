package postgres

import (
	"context"

	"click-collect/internal/domain/cart"
	"click-collect/internal/infra"
	sqlc "click-collect/internal/infra/sqlc/generated"
	"click-collect/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CartQueries interface {
	ListCartItemsByUser(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) ([]sqlc.CartItems, error)
	ListCartItemsBySession(ctx context.Context, db sqlc.DBTX, sessionID pgtype.Text) ([]sqlc.CartItems, error)
	GetCartItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CartItems, error)
	GetCartItemByUserProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartItemByUserProductParams) (sqlc.CartItems, error)
	GetCartItemBySessionProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartItemBySessionProductParams) (sqlc.CartItems, error)
	UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) error
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ClearCartByUser(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) error
	ClearCartBySession(ctx context.Context, db sqlc.DBTX, sessionID pgtype.Text) error
}

type CartRepository struct {
	queries CartQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CartRepository) ListItems(ctx context.Context, owner cart.Owner) ([]*cart.Item, error) {
	var (
		rows []sqlc.CartItems
		err  error
	)
	if owner.IsGuest() {
		rows, err = r.queries.ListCartItemsBySession(ctx, r.db, sessionText(owner))
	} else {
		rows, err = r.queries.ListCartItemsByUser(ctx, r.db, pgconv.UUIDPtrToPgtype(owner.UserID()))
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	items := make([]*cart.Item, len(rows))
	for i, row := range rows {
		items[i] = toCartItem(row)
	}
	return items, nil
}

func (r *CartRepository) FindItem(ctx context.Context, id uuid.UUID) (*cart.Item, error) {
	row, err := r.queries.GetCartItem(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cart item", err)
	}
	return toCartItem(row), nil
}

func (r *CartRepository) FindItemByProduct(ctx context.Context, owner cart.Owner, productID uuid.UUID) (*cart.Item, error) {
	var (
		row sqlc.CartItems
		err error
	)
	if owner.IsGuest() {
		row, err = r.queries.GetCartItemBySessionProduct(ctx, r.db, sqlc.GetCartItemBySessionProductParams{
			SessionID: sessionText(owner),
			ProductID: productID,
		})
	} else {
		row, err = r.queries.GetCartItemByUserProduct(ctx, r.db, sqlc.GetCartItemByUserProductParams{
			UserID:    pgconv.UUIDPtrToPgtype(owner.UserID()),
			ProductID: productID,
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cart item by product", err)
	}
	return toCartItem(row), nil
}

func (r *CartRepository) SaveItem(ctx context.Context, item *cart.Item) error {
	owner := item.Owner()
	params := sqlc.UpsertCartItemParams{
		ID:        item.ID(),
		UserID:    pgconv.UUIDPtrToPgtype(owner.UserID()),
		ProductID: item.ProductID(),
		Quantity:  int32(item.Quantity()), // #nosec G115
		CreatedAt: pgconv.TimeToPgtype(item.CreatedAt()),
	}
	if owner.IsGuest() {
		params.SessionID = sessionText(owner)
	}
	if err := r.queries.UpsertCartItem(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to save cart item", err)
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteCartItem(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to remove cart item", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "cart item not found", nil)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, owner cart.Owner) error {
	var err error
	if owner.IsGuest() {
		err = r.queries.ClearCartBySession(ctx, r.db, sessionText(owner))
	} else {
		err = r.queries.ClearCartByUser(ctx, r.db, pgconv.UUIDPtrToPgtype(owner.UserID()))
	}
	if err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}

func sessionText(owner cart.Owner) pgtype.Text {
	return pgtype.Text{String: owner.SessionID(), Valid: true}
}

func toCartItem(row sqlc.CartItems) *cart.Item {
	owner := cart.ReconstructOwner(pgconv.UUIDPtrFromPgtype(row.UserID), row.SessionID.String)
	return cart.ReconstructItem(row.ID, owner, row.ProductID, int(row.Quantity), pgconv.TimeFromPgtype(row.CreatedAt))
}
