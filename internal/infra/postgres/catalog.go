package postgres

import (
	"context"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/rating"
	"click-collect/internal/infra"
	sqlc "click-collect/internal/infra/sqlc/generated"
	"click-collect/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CategoryQueries interface {
	CreateCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCategoryParams) error
	ListCategories(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListCategoriesRow, error)
	GetCategoryBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.GetCategoryBySlugRow, error)
}

type CategoryRepository struct {
	queries CategoryQueries
	db      sqlc.DBTX
}

func NewCategoryRepository(queries CategoryQueries, db sqlc.DBTX) *CategoryRepository {
	return &CategoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	err := r.queries.CreateCategory(ctx, r.db, sqlc.CreateCategoryParams{
		ID:          c.ID(),
		Name:        c.Name(),
		Slug:        c.Slug(),
		ImageUrl:    pgconv.StringPtrToPgtype(c.ImageURL()),
		Description: pgconv.StringPtrToPgtype(c.Description()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create category", err)
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*catalog.Category, error) {
	rows, err := r.queries.ListCategories(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	categories := make([]*catalog.Category, len(rows))
	for i, row := range rows {
		categories[i] = catalog.ReconstructCategory(
			row.ID, row.Name, row.Slug,
			pgconv.StringPtrFromPgtype(row.ImageUrl),
			pgconv.StringPtrFromPgtype(row.Description),
			int(row.ProductCount),
		)
	}
	return categories, nil
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	row, err := r.queries.GetCategoryBySlug(ctx, r.db, slug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find category by slug", err)
	}
	return catalog.ReconstructCategory(
		row.ID, row.Name, row.Slug,
		pgconv.StringPtrFromPgtype(row.ImageUrl),
		pgconv.StringPtrFromPgtype(row.Description),
		int(row.ProductCount),
	), nil
}

type ProductQueries interface {
	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) error
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	GetProductByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	GetProductsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Products, error)
	ListProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListProductsParams) ([]sqlc.Products, error)
	CountProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.CountProductsParams) (int32, error)
	SuggestProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.SuggestProductsParams) ([]sqlc.Products, error)
	DecrementProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementProductStockParams) (int64, error)
	UpdateProductRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductRatingParams) (int64, error)
}

type ProductRepository struct {
	queries ProductQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	images := p.Images()
	if images == nil {
		images = []string{}
	}
	err := r.queries.CreateProduct(ctx, r.db, sqlc.CreateProductParams{
		ID:            p.ID(),
		Sku:           p.SKU(),
		Name:          p.Name(),
		Description:   pgconv.StringPtrToPgtype(p.Description()),
		Price:         pgconv.DecimalToNumeric(p.Price()),
		Images:        images,
		Stock:         int32(p.Stock()), // #nosec G115 -- stock is bounded by the column type
		CategoryID:    p.CategoryID(),
		IsActive:      p.IsActive(),
		IsPerishable:  p.IsPerishable(),
		RatingAverage: pgconv.DecimalToNumeric(p.RatingAverage()),
		RatingCount:   int32(p.RatingCount()), // #nosec G115
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	p, err := toProduct(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product row", err)
	}
	return p, nil
}

func (r *ProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	row, err := r.queries.GetProductByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock product", err)
	}
	p, err := toProduct(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product row", err)
	}
	return p, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return []*catalog.Product{}, nil
	}
	rows, err := r.queries.GetProductsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products by IDs", err)
	}
	return toProducts(rows)
}

func (r *ProductRepository) List(ctx context.Context, q catalog.ListQuery) ([]*catalog.Product, int, error) {
	search := pgtype.Text{}
	if q.Search != "" {
		search = pgtype.Text{String: q.Search, Valid: true}
	}
	category := pgconv.UUIDPtrToPgtype(q.CategoryID)

	total, err := r.queries.CountProducts(ctx, r.db, sqlc.CountProductsParams{
		Search:     search,
		CategoryID: category,
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count products", err)
	}

	rows, err := r.queries.ListProducts(ctx, r.db, sqlc.ListProductsParams{
		Search:     search,
		CategoryID: category,
		Sort:       string(q.Sort),
		Lim:        int32(q.PageSize), // #nosec G115 -- clamped by NewListQuery
		Off:        int32(q.Offset()), // #nosec G115 -- page bounded by catalog.ClampPage
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list products", err)
	}
	products, err := toProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, int(total), nil
}

func (r *ProductRepository) Suggest(ctx context.Context, term string, limit int) ([]*catalog.Product, error) {
	rows, err := r.queries.SuggestProducts(ctx, r.db, sqlc.SuggestProductsParams{
		Term: term,
		Lim:  int32(limit), // #nosec G115
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to suggest products", err)
	}
	return toProducts(rows)
}

func (r *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	n, err := r.queries.DecrementProductStock(ctx, r.db, sqlc.DecrementProductStockParams{
		Qty: int32(qty), // #nosec G115
		ID:  id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindConflict, "insufficient stock", nil)
	}
	return nil
}

func (r *ProductRepository) UpdateRatingSummary(ctx context.Context, id uuid.UUID, s rating.Summary) error {
	n, err := r.queries.UpdateProductRating(ctx, r.db, sqlc.UpdateProductRatingParams{
		ID:            id,
		RatingAverage: pgconv.DecimalToNumeric(s.Average),
		RatingCount:   int32(s.Count), // #nosec G115
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update product rating", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "product not found", nil)
	}
	return nil
}

func toProducts(rows []sqlc.Products) ([]*catalog.Product, error) {
	products := make([]*catalog.Product, len(rows))
	for i, row := range rows {
		p, err := toProduct(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert product row", err)
		}
		products[i] = p
	}
	return products, nil
}

func toProduct(row sqlc.Products) (*catalog.Product, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	avg, err := pgconv.DecimalFromNumeric(row.RatingAverage)
	if err != nil {
		return nil, err
	}
	images := row.Images
	if images == nil {
		images = []string{}
	}
	return catalog.ReconstructProduct(catalog.ProductSnapshot{
		ID:            row.ID,
		SKU:           row.Sku,
		Name:          row.Name,
		Description:   pgconv.StringPtrFromPgtype(row.Description),
		Price:         price,
		Images:        images,
		Stock:         int(row.Stock),
		CategoryID:    row.CategoryID,
		IsActive:      row.IsActive,
		IsPerishable:  row.IsPerishable,
		RatingAverage: avg,
		RatingCount:   int(row.RatingCount),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}), nil
}
