package postgres

import (
	"context"

	"click-collect/internal/domain/favorite"
	"click-collect/internal/domain/rating"
	"click-collect/internal/infra"
	sqlc "click-collect/internal/infra/sqlc/generated"
	"click-collect/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FavoriteQueries interface {
	CreateFavorite(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFavoriteParams) error
	DeleteFavorite(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteFavoriteParams) error
	ListFavoritesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Favorites, error)
}

type FavoriteRepository struct {
	queries FavoriteQueries
	db      sqlc.DBTX
}

func NewFavoriteRepository(queries FavoriteQueries, db sqlc.DBTX) *FavoriteRepository {
	return &FavoriteRepository{
		queries: queries,
		db:      db,
	}
}

// Add reports DUPLICATE_KEY when the pair already exists.
func (r *FavoriteRepository) Add(ctx context.Context, f *favorite.Favorite) error {
	err := r.queries.CreateFavorite(ctx, r.db, sqlc.CreateFavoriteParams{
		ID:        f.ID(),
		UserID:    f.UserID(),
		ProductID: f.ProductID(),
		CreatedAt: pgconv.TimeToPgtype(f.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to add favorite", err)
	}
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	err := r.queries.DeleteFavorite(ctx, r.db, sqlc.DeleteFavoriteParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to remove favorite", err)
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error) {
	rows, err := r.queries.ListFavoritesByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	favorites := make([]*favorite.Favorite, len(rows))
	for i, row := range rows {
		favorites[i] = favorite.ReconstructFavorite(row.ID, row.UserID, row.ProductID, pgconv.TimeFromPgtype(row.CreatedAt))
	}
	return favorites, nil
}

type RatingQueries interface {
	CreateRating(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRatingParams) error
	ListRatingsByProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRatingsByProductParams) ([]sqlc.Ratings, error)
	CountRatingsByProduct(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (int32, error)
	SummarizeRatings(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.SummarizeRatingsRow, error)
}

type RatingRepository struct {
	queries RatingQueries
	db      sqlc.DBTX
}

func NewRatingRepository(queries RatingQueries, db sqlc.DBTX) *RatingRepository {
	return &RatingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RatingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	err := r.queries.CreateRating(ctx, r.db, sqlc.CreateRatingParams{
		ID:        rt.ID(),
		UserID:    rt.UserID(),
		ProductID: rt.ProductID(),
		Rating:    int32(rt.Score()), // #nosec G115 -- 1..5
		Comment:   pgconv.StringPtrToPgtype(rt.Comment()),
		CreatedAt: pgconv.TimeToPgtype(rt.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create rating", err)
	}
	return nil
}

func (r *RatingRepository) ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*rating.Rating, int, error) {
	total, err := r.queries.CountRatingsByProduct(ctx, r.db, productID)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count ratings", err)
	}
	rows, err := r.queries.ListRatingsByProduct(ctx, r.db, sqlc.ListRatingsByProductParams{
		ProductID: productID,
		Limit:     int32(limit),  // #nosec G115 -- rating.PageSize
		Offset:    int32(offset), // #nosec G115 -- page bounded by catalog.ClampPage
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list ratings", err)
	}
	ratings := make([]*rating.Rating, len(rows))
	for i, row := range rows {
		ratings[i] = rating.ReconstructRating(
			row.ID, row.UserID, row.ProductID, int(row.Rating),
			pgconv.StringPtrFromPgtype(row.Comment),
			pgconv.TimeFromPgtype(row.CreatedAt),
		)
	}
	return ratings, int(total), nil
}

func (r *RatingRepository) Summarize(ctx context.Context, productID uuid.UUID) (rating.Summary, error) {
	row, err := r.queries.SummarizeRatings(ctx, r.db, productID)
	if err != nil {
		return rating.Summary{}, infra.WrapRepoErr("failed to summarize ratings", err)
	}
	return rating.FromTotals(row.Total, int(row.Count)), nil
}
