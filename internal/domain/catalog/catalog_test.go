//go:build unit

package catalog_test

import (
	"math"
	"testing"
	"time"

	"click-collect/internal/domain/catalog"
	"click-collect/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("rounds the price to two places", func(t *testing.T) {
		p, err := builder.NewProductBuilder().WithPrice("1500.456").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "1500.46", p.Price().StringFixed(2))
		assert.True(t, p.IsActive())
		assert.Equal(t, 0, p.RatingCount())
		assert.True(t, p.RatingAverage().IsZero())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ProductBuilder)
	}{
		{name: "blank sku", mutate: func(b *builder.ProductBuilder) { b.WithSKU("  ") }},
		{name: "blank name", mutate: func(b *builder.ProductBuilder) { b.WithName("") }},
		{name: "negative price", mutate: func(b *builder.ProductBuilder) { b.WithPrice("-1") }},
		{name: "negative stock", mutate: func(b *builder.ProductBuilder) { b.WithStock(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewProductBuilder().With(tc.mutate).BuildDomain()
			assert.ErrorIs(t, err, catalog.ErrInvalidProduct)
		})
	}
}

func TestStock(t *testing.T) {
	p, err := builder.NewProductBuilder().WithStock(3).BuildDomain()
	require.NoError(t, err)

	assert.True(t, p.CanFulfil(3))
	assert.False(t, p.CanFulfil(4))
	assert.False(t, p.CanFulfil(0))

	assert.False(t, p.TakeStock(4))
	assert.Equal(t, 3, p.Stock())
	assert.True(t, p.TakeStock(3))
	assert.Equal(t, 0, p.Stock())
	assert.False(t, p.TakeStock(1))
	assert.Equal(t, 0, p.Stock())
}

func TestThumbnail(t *testing.T) {
	p, err := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Images = nil }).BuildDomain()
	require.NoError(t, err)
	assert.Empty(t, p.Thumbnail())

	p, err = builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Images = []string{"a.jpg", "b.jpg"} }).BuildDomain()
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", p.Thumbnail())
}

func TestNewCategory(t *testing.T) {
	c, err := builder.NewCategoryBuilder().BuildDomain()
	require.NoError(t, err)
	assert.Equal(t, "fruits-legumes", c.Slug())

	for _, slug := range []string{"", "Fruits", "fruits--legumes", "-fruits", "fruits legumes"} {
		t.Run("rejects slug "+slug, func(t *testing.T) {
			_, err := builder.NewCategoryBuilder().WithSlug(slug).BuildDomain()
			assert.ErrorIs(t, err, catalog.ErrInvalidCategory)
		})
	}
}

func TestListQuery(t *testing.T) {
	t.Run("normalizes paging and sort", func(t *testing.T) {
		q := catalog.NewListQuery("  riz ", nil, "PRICE_ASC", 0, 0)
		assert.Equal(t, "riz", q.Search)
		assert.Equal(t, catalog.SortPriceAsc, q.Sort)
		assert.Equal(t, catalog.DefaultPage, q.Page)
		assert.Equal(t, catalog.DefaultPageSize, q.PageSize)
		assert.Equal(t, 0, q.Offset())

		q = catalog.NewListQuery("", nil, "bogus", 3, 500)
		assert.Equal(t, catalog.SortNewest, q.Sort)
		assert.Equal(t, catalog.MaxPageSize, q.PageSize)
		assert.Equal(t, 200, q.Offset())
	})

	t.Run("huge pages stay within int4 offsets", func(t *testing.T) {
		for _, page := range []int{1<<62 + 2, 1<<60 + 1, math.MaxInt} {
			q := catalog.NewListQuery("", nil, "", page, 20)
			assert.Positive(t, q.Offset())
			assert.LessOrEqual(t, q.Offset(), math.MaxInt32)
			assert.False(t, q.HasNext(1000))
		}
		assert.Equal(t, math.MaxInt32/10+1, catalog.ClampPage(math.MaxInt, 10))
		assert.Equal(t, catalog.DefaultPage, catalog.ClampPage(-5, 10))
	})

	t.Run("next and previous", func(t *testing.T) {
		q := catalog.NewListQuery("", nil, "", 1, 20)
		assert.False(t, q.HasPrevious())
		assert.True(t, q.HasNext(21))
		assert.False(t, q.HasNext(20))

		q = catalog.NewListQuery("", nil, "", 2, 20)
		assert.True(t, q.HasPrevious())
		assert.False(t, q.HasNext(40))
	})

	t.Run("matches active products by category and name", func(t *testing.T) {
		cat := uuid.New()
		p, err := builder.NewProductBuilder().WithName("Riz parfumé").WithCategoryID(cat).BuildDomain()
		require.NoError(t, err)

		assert.True(t, catalog.NewListQuery("RIZ", &cat, "", 1, 20).Matches(p))
		other := uuid.New()
		assert.False(t, catalog.NewListQuery("", &other, "", 1, 20).Matches(p))
		assert.False(t, catalog.NewListQuery("huile", nil, "", 1, 20).Matches(p))

		inactive := catalog.ReconstructProduct(catalog.ProductSnapshot{ID: uuid.New(), Name: "Riz", IsActive: false})
		assert.False(t, catalog.NewListQuery("", nil, "", 1, 20).Matches(inactive))
	})

	t.Run("orders by sort then newest", func(t *testing.T) {
		t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		cheapOld, _ := builder.NewProductBuilder().WithPrice("100").WithCreatedAt(t0).BuildDomain()
		cheapNew, _ := builder.NewProductBuilder().WithPrice("100").WithCreatedAt(t0.Add(time.Hour)).BuildDomain()
		dear, _ := builder.NewProductBuilder().WithPrice("900").WithCreatedAt(t0).BuildDomain()
		dear.ApplyRatingSummary(decimal.NewFromInt(4), 3)

		asc := catalog.NewListQuery("", nil, "price_asc", 1, 20)
		assert.True(t, asc.Less(cheapOld, dear))
		assert.True(t, asc.Less(cheapNew, cheapOld))

		desc := catalog.NewListQuery("", nil, "price_desc", 1, 20)
		assert.True(t, desc.Less(dear, cheapOld))

		popular := catalog.NewListQuery("", nil, "popular", 1, 20)
		assert.True(t, popular.Less(dear, cheapNew))

		newest := catalog.NewListQuery("", nil, "", 1, 20)
		assert.True(t, newest.Less(cheapNew, cheapOld))
	})
}
