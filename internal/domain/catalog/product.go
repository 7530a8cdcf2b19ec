package catalog

import (
	"strings"
	"time"

	"click-collect/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errs.Class("product not found", errs.ErrNotFound)
	ErrInvalidProduct  = errs.Class("invalid product", errs.ErrValidation)
)

type Product struct {
	id            uuid.UUID
	sku           string
	name          string
	description   *string
	price         decimal.Decimal
	images        []string
	stock         int
	categoryID    uuid.UUID
	isActive      bool
	isPerishable  bool
	ratingAverage decimal.Decimal
	ratingCount   int
	createdAt     time.Time
}

type NewProductParams struct {
	SKU          string
	Name         string
	Description  *string
	Price        decimal.Decimal
	Images       []string
	Stock        int
	CategoryID   uuid.UUID
	IsPerishable bool
}

func NewProduct(p NewProductParams, now time.Time) (*Product, error) {
	if strings.TrimSpace(p.SKU) == "" || strings.TrimSpace(p.Name) == "" {
		return nil, errs.Wrap(ErrInvalidProduct, "sku and name are required")
	}
	if p.Price.IsNegative() {
		return nil, errs.Wrap(ErrInvalidProduct, "price must not be negative")
	}
	if p.Stock < 0 {
		return nil, errs.Wrap(ErrInvalidProduct, "stock must not be negative")
	}
	return &Product{
		id:            uuid.New(),
		sku:           strings.TrimSpace(p.SKU),
		name:          strings.TrimSpace(p.Name),
		description:   p.Description,
		price:         p.Price.Round(2),
		images:        append([]string(nil), p.Images...),
		stock:         p.Stock,
		categoryID:    p.CategoryID,
		isActive:      true,
		isPerishable:  p.IsPerishable,
		ratingAverage: decimal.Zero,
		createdAt:     now,
	}, nil
}

type ProductSnapshot struct {
	ID            uuid.UUID
	SKU           string
	Name          string
	Description   *string
	Price         decimal.Decimal
	Images        []string
	Stock         int
	CategoryID    uuid.UUID
	IsActive      bool
	IsPerishable  bool
	RatingAverage decimal.Decimal
	RatingCount   int
	CreatedAt     time.Time
}

func ReconstructProduct(s ProductSnapshot) *Product {
	return &Product{
		id:            s.ID,
		sku:           s.SKU,
		name:          s.Name,
		description:   s.Description,
		price:         s.Price,
		images:        s.Images,
		stock:         s.Stock,
		categoryID:    s.CategoryID,
		isActive:      s.IsActive,
		isPerishable:  s.IsPerishable,
		ratingAverage: s.RatingAverage,
		ratingCount:   s.RatingCount,
		createdAt:     s.CreatedAt,
	}
}

func (p *Product) ID() uuid.UUID                  { return p.id }
func (p *Product) SKU() string                    { return p.sku }
func (p *Product) Name() string                   { return p.name }
func (p *Product) Description() *string           { return p.description }
func (p *Product) Price() decimal.Decimal         { return p.price }
func (p *Product) Images() []string               { return p.images }
func (p *Product) Stock() int                     { return p.stock }
func (p *Product) CategoryID() uuid.UUID          { return p.categoryID }
func (p *Product) IsActive() bool                 { return p.isActive }
func (p *Product) IsPerishable() bool             { return p.isPerishable }
func (p *Product) RatingAverage() decimal.Decimal { return p.ratingAverage }
func (p *Product) RatingCount() int               { return p.ratingCount }
func (p *Product) CreatedAt() time.Time           { return p.createdAt }

// Thumbnail is the first image, or empty.
func (p *Product) Thumbnail() string {
	if len(p.images) == 0 {
		return ""
	}
	return p.images[0]
}

// CanFulfil reports whether an active product has at least qty units.
func (p *Product) CanFulfil(qty int) bool {
	return p.isActive && qty > 0 && p.stock >= qty
}

// TakeStock is the in-process form of the guarded decrement the stores run.
func (p *Product) TakeStock(qty int) bool {
	if qty <= 0 || p.stock < qty {
		return false
	}
	p.stock -= qty
	return true
}

func (p *Product) ApplyRatingSummary(average decimal.Decimal, count int) {
	p.ratingAverage = average
	p.ratingCount = count
}
