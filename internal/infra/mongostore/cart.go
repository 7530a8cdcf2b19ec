package mongostore

import (
	"context"

	"click-collect/internal/domain/cart"
	"click-collect/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository struct {
	col *mongo.Collection
}

// ownerFilter matches guest rows only when no user is attached.
func ownerFilter(owner cart.Owner) bson.M {
	if owner.IsGuest() {
		return bson.M{"userId": nil, "sessionId": owner.SessionID()}
	}
	return bson.M{"userId": owner.UserID().String()}
}

func (r *CartRepository) ListItems(ctx context.Context, owner cart.Owner) ([]*cart.Item, error) {
	cur, err := r.col.Find(ctx, ownerFilter(owner),
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	var docs []cartItemDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode cart items", err)
	}
	items := make([]*cart.Item, 0, len(docs))
	for _, d := range docs {
		it, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert cart item document", err)
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *CartRepository) FindItem(ctx context.Context, id uuid.UUID) (*cart.Item, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *CartRepository) FindItemByProduct(ctx context.Context, owner cart.Owner, productID uuid.UUID) (*cart.Item, error) {
	filter := ownerFilter(owner)
	filter["productId"] = productID.String()
	return r.findOne(ctx, filter)
}

func (r *CartRepository) SaveItem(ctx context.Context, item *cart.Item) error {
	d := fromCartItem(item)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d, options.Replace().SetUpsert(true))
	if err != nil {
		return infra.WrapRepoErr("failed to save cart item", err)
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, id uuid.UUID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to remove cart item", err)
	}
	if res.DeletedCount == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "cart item not found", nil)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, owner cart.Owner) error {
	if _, err := r.col.DeleteMany(ctx, ownerFilter(owner)); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}

func (r *CartRepository) findOne(ctx context.Context, filter bson.M) (*cart.Item, error) {
	var d cartItemDoc
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, infra.WrapRepoErr("failed to find cart item", err)
	}
	it, err := d.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert cart item document", err)
	}
	return it, nil
}
