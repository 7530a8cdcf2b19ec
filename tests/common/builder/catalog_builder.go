//go:build unit || e2e

package builder

import (
	"time"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryBuilder struct {
	Name string
	Slug string
}

func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{
		Name: "Fruits et légumes",
		Slug: "fruits-legumes",
	}
}

func (c *CategoryBuilder) BuildDomain() (*catalog.Category, error) {
	return catalog.NewCategory(c.Name, c.Slug, nil, nil)
}

func (c *CategoryBuilder) WithSlug(slug string) *CategoryBuilder {
	c.Slug = slug
	return c
}

func (c *CategoryBuilder) WithName(name string) *CategoryBuilder {
	c.Name = name
	return c
}

type ProductBuilder struct {
	SKU          string
	Name         string
	Price        decimal.Decimal
	Images       []string
	Stock        int
	CategoryID   uuid.UUID
	IsPerishable bool
	CreatedAt    time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		SKU:        "FL-BAN-001",
		Name:       "Bananes plantain",
		Price:      decimal.NewFromInt(1200),
		Images:     []string{"https://res.cloudinary.com/demo/image/upload/plantain.jpg"},
		Stock:      10,
		CategoryID: uuid.New(),
		CreatedAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProductBuilder) BuildDomain() (*catalog.Product, error) {
	return catalog.NewProduct(catalog.NewProductParams{
		SKU:          p.SKU,
		Name:         p.Name,
		Price:        p.Price,
		Images:       p.Images,
		Stock:        p.Stock,
		CategoryID:   p.CategoryID,
		IsPerishable: p.IsPerishable,
	}, p.CreatedAt)
}

func (p *ProductBuilder) BuildView() *queries.ProductView {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return &queries.ProductView{
		ID:            uuid.New(),
		SKU:           p.SKU,
		Name:          p.Name,
		Price:         p.Price,
		Images:        images,
		Stock:         p.Stock,
		CategoryID:    p.CategoryID,
		IsActive:      true,
		IsPerishable:  p.IsPerishable,
		RatingAverage: decimal.Zero,
		CreatedAt:     p.CreatedAt,
	}
}

// Fluent builder methods
func (p *ProductBuilder) WithSKU(sku string) *ProductBuilder {
	p.SKU = sku
	return p
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPrice(price string) *ProductBuilder {
	p.Price = decimal.RequireFromString(price)
	return p
}

func (p *ProductBuilder) WithStock(stock int) *ProductBuilder {
	p.Stock = stock
	return p
}

func (p *ProductBuilder) WithCategoryID(id uuid.UUID) *ProductBuilder {
	p.CategoryID = id
	return p
}

func (p *ProductBuilder) WithCreatedAt(t time.Time) *ProductBuilder {
	p.CreatedAt = t
	return p
}

func (p *ProductBuilder) AsPerishable() *ProductBuilder {
	p.IsPerishable = true
	return p
}
