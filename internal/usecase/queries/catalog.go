package queries

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/infra"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

type ListProductsParams struct {
	Search       string
	CategorySlug string
	Sort         string
	Page         int
	PageSize     int
}

type CatalogQueries interface {
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	ListProducts(ctx context.Context, p ListProductsParams) (*ProductPage, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	Suggest(ctx context.Context, term string) ([]*SuggestionView, error)
}

type catalogQueriesImpl struct {
	uow   shared.UnitOfWork
	cache shared.CatalogCache
}

func NewCatalogQueries(uow shared.UnitOfWork, cache shared.CatalogCache) CatalogQueries {
	return &catalogQueriesImpl{uow: uow, cache: cache}
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]*CategoryView, error) {
	const key = "categories"
	var cached []*CategoryView
	gen, hit := q.cache.Get(ctx, key, &cached)
	if hit {
		return cached, nil
	}

	cats, err := q.uow.Reads().Categories().List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*CategoryView, len(cats))
	for i, c := range cats {
		views[i] = toCategoryView(c)
	}
	q.cache.Set(ctx, gen, key, views)
	return views, nil
}

// ListProducts resolves the category slug first; an unknown slug is an
// empty page rather than an error.
func (q *catalogQueriesImpl) ListProducts(ctx context.Context, p ListProductsParams) (*ProductPage, error) {
	base := catalog.NewListQuery(p.Search, nil, p.Sort, p.Page, p.PageSize)
	slug := strings.TrimSpace(p.CategorySlug)
	key := fmt.Sprintf("products:s=%s:c=%s:o=%s:p=%d:n=%d",
		url.QueryEscape(strings.ToLower(base.Search)), url.QueryEscape(slug), base.Sort, base.Page, base.PageSize)

	var cached ProductPage
	gen, hit := q.cache.Get(ctx, key, &cached)
	if hit {
		return &cached, nil
	}

	reads := q.uow.Reads()
	query := base
	if slug != "" {
		cat, err := reads.Categories().FindBySlug(ctx, slug)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return &ProductPage{Results: []*ProductView{}}, nil
			}
			return nil, err
		}
		id := cat.ID()
		query.CategoryID = &id
	}

	products, total, err := reads.Products().List(ctx, query)
	if err != nil {
		return nil, err
	}

	page := &ProductPage{Results: make([]*ProductView, len(products)), Count: total}
	for i, prod := range products {
		page.Results[i] = toProductView(prod)
	}
	if query.HasNext(total) {
		next := query.Page + 1
		page.Next = &next
	}
	if query.HasPrevious() {
		prev := query.Page - 1
		page.Previous = &prev
	}

	q.cache.Set(ctx, gen, key, page)
	return page, nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	key := "product:" + id.String()
	var cached ProductView
	gen, hit := q.cache.Get(ctx, key, &cached)
	if hit {
		return &cached, nil
	}

	p, err := q.uow.Reads().Products().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, err
	}
	view := toProductView(p)
	q.cache.Set(ctx, gen, key, view)
	return view, nil
}

func (q *catalogQueriesImpl) Suggest(ctx context.Context, term string) ([]*SuggestionView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*SuggestionView{}, nil
	}

	products, err := q.uow.Reads().Products().Suggest(ctx, term, catalog.SuggestLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*SuggestionView, len(products))
	for i, p := range products {
		out[i] = &SuggestionView{ID: p.ID(), Name: p.Name(), ThumbURL: p.Thumbnail()}
	}
	return out, nil
}
