package mongostore

import (
	"context"

	"click-collect/internal/domain/favorite"
	"click-collect/internal/domain/rating"
	"click-collect/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FavoriteRepository struct {
	col *mongo.Collection
}

// Add relies on the unique (userId, productId) index for duplicates.
func (r *FavoriteRepository) Add(ctx context.Context, f *favorite.Favorite) error {
	_, err := r.col.InsertOne(ctx, favoriteDoc{
		ID:        f.ID().String(),
		UserID:    f.UserID().String(),
		ProductID: f.ProductID().String(),
		CreatedAt: f.CreatedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to add favorite", err)
	}
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"userId": userID.String(), "productId": productID.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to remove favorite", err)
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userId": userID.String()},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	var docs []favoriteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode favorites", err)
	}
	favorites := make([]*favorite.Favorite, 0, len(docs))
	for _, d := range docs {
		f, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert favorite document", err)
		}
		favorites = append(favorites, f)
	}
	return favorites, nil
}

type RatingRepository struct {
	col *mongo.Collection
}

func (r *RatingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	_, err := r.col.InsertOne(ctx, ratingDoc{
		ID:        rt.ID().String(),
		UserID:    rt.UserID().String(),
		ProductID: rt.ProductID().String(),
		Rating:    rt.Score(),
		Comment:   rt.Comment(),
		CreatedAt: rt.CreatedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create rating", err)
	}
	return nil
}

func (r *RatingRepository) ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*rating.Rating, int, error) {
	filter := bson.M{"productId": productID.String()}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count ratings", err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list ratings", err)
	}
	var docs []ratingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to decode ratings", err)
	}
	ratings := make([]*rating.Rating, 0, len(docs))
	for _, d := range docs {
		rt, err := d.toDomain()
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to convert rating document", err)
		}
		ratings = append(ratings, rt)
	}
	return ratings, int(total), nil
}

func (r *RatingRepository) Summarize(ctx context.Context, productID uuid.UUID) (rating.Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"productId": productID.String()}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return rating.Summary{}, infra.WrapRepoErr("failed to summarize ratings", err)
	}
	var rows []struct {
		Total int64 `bson:"total"`
		Count int   `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return rating.Summary{}, infra.WrapRepoErr("failed to decode rating summary", err)
	}
	if len(rows) == 0 {
		return rating.FromTotals(0, 0), nil
	}
	return rating.FromTotals(rows[0].Total, rows[0].Count), nil
}
