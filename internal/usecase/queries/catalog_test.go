//go:build unit

package queries_test

import (
	"context"
	"testing"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/infra/memstore"
	"click-collect/internal/usecase/queries"
	"click-collect/internal/usecase/shared"
	"click-collect/tests/common/builder"
	sharedmock "click-collect/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogQueriesTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	mockCache *sharedmock.MockCatalogCache
	uow       shared.UnitOfWork
	product   *catalog.Product
	q         queries.CatalogQueries
}

func TestCatalogQueriesSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCache = sharedmock.NewMockCatalogCache(s.mockCtrl)
	s.uow = memstore.NewUoW(memstore.New())

	c, err := builder.NewCategoryBuilder().BuildDomain()
	s.Require().NoError(err)
	p, err := builder.NewProductBuilder().WithCategoryID(c.ID()).WithStock(7).BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Categories().Create(ctx, c); err != nil {
			return err
		}
		return tx.Products().Create(ctx, p)
	}))
	s.product = p
	s.q = queries.NewCatalogQueries(s.uow, s.mockCache)
}

func (s *CatalogQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CatalogQueriesTestSuite) TestGetProduct() {
	key := "product:" + s.product.ID().String()

	s.Run("miss stores under the generation seen before loading", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(shared.CacheGeneration(7), false)
		s.mockCache.EXPECT().Set(gomock.Any(), shared.CacheGeneration(7), key, gomock.Any()).
			Do(func(_ context.Context, _ shared.CacheGeneration, _ string, value any) {
				s.Equal(7, value.(*queries.ProductView).Stock)
			})

		view, err := s.q.GetProduct(s.ctx, s.product.ID())
		s.Require().NoError(err)
		s.Equal(s.product.ID(), view.ID)
	})

	s.Run("hit skips the store", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) (shared.CacheGeneration, bool) {
				*dest.(*queries.ProductView) = queries.ProductView{ID: s.product.ID(), Name: "cached"}
				return 3, true
			})

		view, err := s.q.GetProduct(s.ctx, s.product.ID())
		s.Require().NoError(err)
		s.Equal("cached", view.Name)
	})

	s.Run("unknown product is not cached", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(shared.CacheGeneration(0), false)

		_, err := s.q.GetProduct(s.ctx, uuid.New())
		s.ErrorIs(err, catalog.ErrProductNotFound)
	})
}

func (s *CatalogQueriesTestSuite) TestListProducts_HugePage() {
	s.mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(shared.NoGeneration, false)
	s.mockCache.EXPECT().Set(gomock.Any(), shared.NoGeneration, gomock.Any(), gomock.Any())

	page, err := s.q.ListProducts(s.ctx, queries.ListProductsParams{Page: 1<<60 + 1, PageSize: 8})
	s.Require().NoError(err)
	s.Equal(1, page.Count)
	s.Empty(page.Results)
	s.Nil(page.Next)
}
