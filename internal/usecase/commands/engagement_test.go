//go:build unit

package commands_test

import (
	"context"
	"testing"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/favorite"
	"click-collect/internal/domain/rating"
	"click-collect/internal/infra/memstore"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/pkg/errs"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/shared"
	"click-collect/tests/common/builder"
	sharedmock "click-collect/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// seedProduct stores a category and one product in a fresh memory store.
func seedProduct(t *testing.T, stock int) (shared.UnitOfWork, *catalog.Product) {
	t.Helper()
	uow := memstore.NewUoW(memstore.New())
	category, err := builder.NewCategoryBuilder().BuildDomain()
	require.NoError(t, err)
	p, err := builder.NewProductBuilder().WithStock(stock).WithCategoryID(category.ID()).BuildDomain()
	require.NoError(t, err)

	require.NoError(t, uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Categories().Create(ctx, category); err != nil {
			return err
		}
		return tx.Products().Create(ctx, p)
	}))
	return uow, p
}

func TestFavoriteCommands_Add(t *testing.T) {
	ctx := context.Background()
	uow, p := seedProduct(t, 10)
	cmds := commands.NewFavoriteCommands(uow, clock.NewMockClock(testNow))
	userID := uuid.New()

	id, err := cmds.Add(ctx, userID, p.ID())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	t.Run("same product twice", func(t *testing.T) {
		_, err := cmds.Add(ctx, userID, p.ID())
		assert.ErrorIs(t, err, favorite.ErrAlreadyFavorite)
	})

	t.Run("another user may favorite it", func(t *testing.T) {
		_, err := cmds.Add(ctx, uuid.New(), p.ID())
		assert.NoError(t, err)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := cmds.Add(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})
}

func TestFavoriteCommands_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uow, p := seedProduct(t, 10)
	cmds := commands.NewFavoriteCommands(uow, clock.NewMockClock(testNow))
	userID := uuid.New()

	_, err := cmds.Add(ctx, userID, p.ID())
	require.NoError(t, err)

	require.NoError(t, cmds.Remove(ctx, userID, p.ID()))
	require.NoError(t, cmds.Remove(ctx, userID, p.ID()))

	favorites, err := uow.Reads().Favorites().ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestRatingCommands_Rate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cache := sharedmock.NewMockCatalogCache(ctrl)

	uow, p := seedProduct(t, 10)
	cmds := commands.NewRatingCommands(uow, cache, clock.NewMockClock(testNow))
	userID := uuid.New()

	cache.EXPECT().Invalidate(gomock.Any()).Times(3)
	for _, score := range []int{5, 4, 4} {
		_, err := cmds.Rate(ctx, userID, p.ID(), commands.RateInput{Rating: score, Comment: "  Très frais  "})
		require.NoError(t, err)
	}

	got, err := uow.Reads().Products().FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "4.33", got.RatingAverage().StringFixed(2))
	assert.Equal(t, 3, got.RatingCount())

	ratings, total, err := uow.Reads().Ratings().ListByProduct(ctx, p.ID(), rating.PageSize, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.NotNil(t, ratings[0].Comment())
	assert.Equal(t, "Très frais", *ratings[0].Comment())
}

func TestRatingCommands_RateRejects(t *testing.T) {
	tests := []struct {
		name        string
		score       int
		product     func(p *catalog.Product) uuid.UUID
		expectErr   error
		expectClass error
	}{
		{
			name:        "score below range",
			score:       0,
			product:     func(p *catalog.Product) uuid.UUID { return p.ID() },
			expectErr:   rating.ErrInvalidScore,
			expectClass: errs.ErrValidation,
		},
		{
			name:        "score above range",
			score:       6,
			product:     func(p *catalog.Product) uuid.UUID { return p.ID() },
			expectErr:   rating.ErrInvalidScore,
			expectClass: errs.ErrValidation,
		},
		{
			name:        "unknown product",
			score:       3,
			product:     func(*catalog.Product) uuid.UUID { return uuid.New() },
			expectErr:   catalog.ErrProductNotFound,
			expectClass: errs.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := sharedmock.NewMockCatalogCache(ctrl)
			uow, p := seedProduct(t, 10)
			cmds := commands.NewRatingCommands(uow, cache, clock.NewMockClock(testNow))

			_, err := cmds.Rate(context.Background(), uuid.New(), tt.product(p), commands.RateInput{Rating: tt.score})
			assert.ErrorIs(t, err, tt.expectErr)
			assert.True(t, errs.Is(err, tt.expectClass))

			got, err := uow.Reads().Products().FindByID(context.Background(), p.ID())
			require.NoError(t, err)
			assert.Equal(t, 0, got.RatingCount())
		})
	}
}
