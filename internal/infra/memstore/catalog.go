package memstore

import (
	"context"
	"sort"
	"strings"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/rating"
	"click-collect/internal/infra"

	"github.com/google/uuid"
)

type categoryRepo struct{ v *view }

func (r categoryRepo) Create(_ context.Context, c *catalog.Category) (err error) {
	r.v.do(func() {
		for id, other := range r.v.s.categories {
			if id == c.ID() || other.Slug() == c.Slug() {
				err = infra.NewRepoErr(infra.KindDuplicateKey, "category slug taken", nil)
				return
			}
		}
		put(r.v.j, r.v.s.categories, c.ID(), *c)
	})
	return err
}

func (r categoryRepo) List(_ context.Context) ([]*catalog.Category, error) {
	var categories []*catalog.Category
	r.v.do(func() {
		categories = make([]*catalog.Category, 0, len(r.v.s.categories))
		for _, c := range r.v.s.categories {
			categories = append(categories, r.withCount(c))
		}
	})
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name() < categories[j].Name() })
	return categories, nil
}

func (r categoryRepo) FindBySlug(_ context.Context, slug string) (found *catalog.Category, err error) {
	r.v.do(func() {
		for _, c := range r.v.s.categories {
			if c.Slug() == slug {
				found = r.withCount(c)
				return
			}
		}
		err = infra.NewRepoErr(infra.KindNotFound, "category not found", nil)
	})
	return found, err
}

// withCount counts active products; the caller holds the lock.
func (r categoryRepo) withCount(c catalog.Category) *catalog.Category {
	n := 0
	for _, p := range r.v.s.products {
		if p.IsActive() && p.CategoryID() == c.ID() {
			n++
		}
	}
	return catalog.ReconstructCategory(c.ID(), c.Name(), c.Slug(), c.ImageURL(), c.Description(), n)
}

type productRepo struct{ v *view }

func (r productRepo) Create(_ context.Context, p *catalog.Product) (err error) {
	r.v.do(func() {
		if _, ok := r.v.s.categories[p.CategoryID()]; !ok {
			err = infra.NewRepoErr(infra.KindForeignKeyViolated, "category does not exist", nil)
			return
		}
		for id, other := range r.v.s.products {
			if id == p.ID() || other.SKU() == p.SKU() {
				err = infra.NewRepoErr(infra.KindDuplicateKey, "product sku taken", nil)
				return
			}
		}
		put(r.v.j, r.v.s.products, p.ID(), *p)
	})
	return err
}

func (r productRepo) FindByID(_ context.Context, id uuid.UUID) (found *catalog.Product, err error) {
	r.v.do(func() {
		p, ok := r.v.s.products[id]
		if !ok {
			err = infra.NewRepoErr(infra.KindNotFound, "product not found", nil)
			return
		}
		found = &p
	})
	return found, err
}

// FindByIDForUpdate needs no lock of its own; Within already runs one writer at a time.
func (r productRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.FindByID(ctx, id)
}

func (r productRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*catalog.Product, error) {
	products := make([]*catalog.Product, 0, len(ids))
	r.v.do(func() {
		for _, id := range ids {
			if p, ok := r.v.s.products[id]; ok {
				products = append(products, &p)
			}
		}
	})
	return products, nil
}

func (r productRepo) List(_ context.Context, q catalog.ListQuery) ([]*catalog.Product, int, error) {
	var matched []*catalog.Product
	r.v.do(func() {
		for _, p := range r.v.s.products {
			if q.Matches(&p) {
				matched = append(matched, &p)
			}
		}
	})
	sort.Slice(matched, func(i, j int) bool { return q.Less(matched[i], matched[j]) })
	return paginate(matched, q.PageSize, q.Offset()), len(matched), nil
}

func (r productRepo) Suggest(_ context.Context, term string, limit int) ([]*catalog.Product, error) {
	term = strings.ToLower(term)
	var matched []*catalog.Product
	r.v.do(func() {
		for _, p := range r.v.s.products {
			if p.IsActive() && strings.Contains(strings.ToLower(p.Name()), term) {
				matched = append(matched, &p)
			}
		}
	})
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name() < matched[j].Name() })
	return paginate(matched, limit, 0), nil
}

func (r productRepo) DecrementStock(_ context.Context, id uuid.UUID, qty int) (err error) {
	r.v.do(func() {
		p, ok := r.v.s.products[id]
		if !ok || !p.IsActive() || !p.TakeStock(qty) {
			err = infra.NewRepoErr(infra.KindConflict, "insufficient stock", nil)
			return
		}
		put(r.v.j, r.v.s.products, id, p)
	})
	return err
}

func (r productRepo) UpdateRatingSummary(_ context.Context, id uuid.UUID, s rating.Summary) (err error) {
	r.v.do(func() {
		p, ok := r.v.s.products[id]
		if !ok {
			err = infra.NewRepoErr(infra.KindNotFound, "product not found", nil)
			return
		}
		p.ApplyRatingSummary(s.Average, s.Count)
		put(r.v.j, r.v.s.products, id, p)
	})
	return err
}
