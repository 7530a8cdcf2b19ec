package queries

import (
	"context"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/rating"
	"click-collect/internal/infra"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=engagement.go -destination=../../../tests/mock/queries/engagement_mock.go -package=queriesmock

type FavoriteQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*FavoriteView, error)
}

type favoriteQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewFavoriteQueries(uow shared.UnitOfWork) FavoriteQueries {
	return &favoriteQueriesImpl{uow: uow}
}

// ListByUser drops favorites whose product has since been removed.
func (q *favoriteQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*FavoriteView, error) {
	reads := q.uow.Reads()
	favs, err := reads.Favorites().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(favs))
	for i, f := range favs {
		ids[i] = f.ProductID()
	}
	products, err := productsByID(ctx, reads.Products(), ids)
	if err != nil {
		return nil, err
	}

	out := make([]*FavoriteView, 0, len(favs))
	for _, f := range favs {
		p, ok := products[f.ProductID()]
		if !ok {
			continue
		}
		out = append(out, &FavoriteView{
			ID:        f.ID(),
			ProductID: f.ProductID(),
			CreatedAt: f.CreatedAt(),
			Product:   toProductView(p),
		})
	}
	return out, nil
}

type RatingQueries interface {
	ListByProduct(ctx context.Context, productID uuid.UUID, page int) (*RatingPage, error)
}

type ratingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRatingQueries(uow shared.UnitOfWork) RatingQueries {
	return &ratingQueriesImpl{uow: uow}
}

func (q *ratingQueriesImpl) ListByProduct(ctx context.Context, productID uuid.UUID, page int) (*RatingPage, error) {
	page = catalog.ClampPage(page, rating.PageSize)
	reads := q.uow.Reads()
	if _, err := reads.Products().FindByID(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, err
	}

	ratings, total, err := reads.Ratings().ListByProduct(ctx, productID, rating.PageSize, (page-1)*rating.PageSize)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uuid.UUID, 0, len(ratings))
	seen := make(map[uuid.UUID]bool, len(ratings))
	for _, r := range ratings {
		if !seen[r.UserID()] {
			seen[r.UserID()] = true
			authorIDs = append(authorIDs, r.UserID())
		}
	}
	authors := map[uuid.UUID]string{}
	if len(authorIDs) > 0 {
		users, err := reads.Users().FindByIDs(ctx, authorIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			authors[u.ID()] = u.Username().Value()
		}
	}

	out := &RatingPage{Results: make([]*RatingView, len(ratings)), Count: total}
	for i, r := range ratings {
		out.Results[i] = &RatingView{
			ID:        r.ID(),
			Rating:    r.Score(),
			Comment:   r.Comment(),
			CreatedAt: r.CreatedAt(),
			User:      RatingAuthorView{ID: r.UserID(), Username: authors[r.UserID()]},
		}
	}
	return out, nil
}

func productsByID(ctx context.Context, products shared.ProductRepository, ids []uuid.UUID) (map[uuid.UUID]*catalog.Product, error) {
	out := make(map[uuid.UUID]*catalog.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	list, err := products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		out[p.ID()] = p
	}
	return out, nil
}
