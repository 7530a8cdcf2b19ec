package commands

import (
	"context"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/favorite"
	"click-collect/internal/domain/rating"
	"click-collect/internal/infra"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=engagement.go -destination=../../../tests/mock/commands/engagement_mock.go -package=commandsmock

type FavoriteCommands interface {
	Add(ctx context.Context, userID, productID uuid.UUID) (uuid.UUID, error)
	// Remove succeeds when the favorite is already gone.
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}

type favoriteCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFavoriteCommands(uow shared.UnitOfWork, clk clock.Clock) FavoriteCommands {
	return &favoriteCommandsImpl{uow: uow, clock: clk}
}

func (f *favoriteCommandsImpl) Add(ctx context.Context, userID, productID uuid.UUID) (uuid.UUID, error) {
	fav := favorite.NewFavorite(userID, productID, f.clock.Now())
	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := loadProduct(ctx, tx.Products(), productID); err != nil {
			return err
		}
		if err := tx.Favorites().Add(ctx, fav); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return favorite.ErrAlreadyFavorite
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return fav.ID(), nil
}

func (f *favoriteCommandsImpl) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Favorites().Remove(ctx, userID, productID)
	})
}

type RateInput struct {
	Rating  int
	Comment string
}

type RatingCommands interface {
	Rate(ctx context.Context, userID, productID uuid.UUID, in RateInput) (uuid.UUID, error)
}

type ratingCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.CatalogCache
	clock clock.Clock
}

func NewRatingCommands(uow shared.UnitOfWork, cache shared.CatalogCache, clk clock.Clock) RatingCommands {
	return &ratingCommandsImpl{uow: uow, cache: cache, clock: clk}
}

// Rate stores the rating and rewrites the product's summary in the same
// transaction, so the stored average always matches the stored ratings.
func (r *ratingCommandsImpl) Rate(ctx context.Context, userID, productID uuid.UUID, in RateInput) (uuid.UUID, error) {
	rt, err := rating.NewRating(userID, productID, in.Rating, in.Comment, r.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Concurrent raters queue on the product so each summary counts every committed rating.
		if _, err := tx.Products().FindByIDForUpdate(ctx, productID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return catalog.ErrProductNotFound
			}
			return err
		}
		if err := tx.Ratings().Create(ctx, rt); err != nil {
			return err
		}
		summary, err := tx.Ratings().Summarize(ctx, productID)
		if err != nil {
			return err
		}
		return tx.Products().UpdateRatingSummary(ctx, productID, summary)
	})
	if err != nil {
		return uuid.Nil, err
	}

	r.cache.Invalidate(ctx)
	return rt.ID(), nil
}

func loadProduct(ctx context.Context, products shared.ProductRepository, id uuid.UUID) (*catalog.Product, error) {
	p, err := products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}
