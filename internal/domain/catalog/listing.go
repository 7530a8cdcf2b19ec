package catalog

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

type Sort string

const (
	SortNewest    Sort = "newest"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortPopular   Sort = "popular"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	SuggestLimit    = 5
)

// ParseSort falls back to newest for unknown values.
func ParseSort(s string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortPopular:
		return SortPopular
	default:
		return SortNewest
	}
}

// ListQuery is a normalized product listing request. Only active products are listed.
type ListQuery struct {
	Search     string
	CategoryID *uuid.UUID
	Sort       Sort
	Page       int
	PageSize   int
}

// ClampPage keeps page within [1, last page whose offset fits a SQL int4].
func ClampPage(page, pageSize int) int {
	if page < 1 {
		return DefaultPage
	}
	if last := math.MaxInt32/pageSize + 1; page > last {
		return last
	}
	return page
}

func NewListQuery(search string, categoryID *uuid.UUID, sort string, page, pageSize int) ListQuery {
	switch {
	case pageSize < 1:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	page = ClampPage(page, pageSize)
	return ListQuery{
		Search:     strings.TrimSpace(search),
		CategoryID: categoryID,
		Sort:       ParseSort(sort),
		Page:       page,
		PageSize:   pageSize,
	}
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// HasNext reports whether another page exists after this one.
func (q ListQuery) HasNext(total int) bool {
	return total > q.Page*q.PageSize
}

func (q ListQuery) HasPrevious() bool {
	return q.Page > 1
}

// Matches applies the filter to one product; used by stores without a query language.
func (q ListQuery) Matches(p *Product) bool {
	if !p.IsActive() {
		return false
	}
	if q.CategoryID != nil && p.CategoryID() != *q.CategoryID {
		return false
	}
	if q.Search != "" && !strings.Contains(strings.ToLower(p.Name()), strings.ToLower(q.Search)) {
		return false
	}
	return true
}

// Less orders two products for the query's sort, newest first on ties.
func (q ListQuery) Less(a, b *Product) bool {
	switch q.Sort {
	case SortPriceAsc:
		if !a.Price().Equal(b.Price()) {
			return a.Price().LessThan(b.Price())
		}
	case SortPriceDesc:
		if !a.Price().Equal(b.Price()) {
			return a.Price().GreaterThan(b.Price())
		}
	case SortPopular:
		if a.RatingCount() != b.RatingCount() {
			return a.RatingCount() > b.RatingCount()
		}
	}
	if !a.CreatedAt().Equal(b.CreatedAt()) {
		return a.CreatedAt().After(b.CreatedAt())
	}
	return a.ID().String() < b.ID().String()
}
