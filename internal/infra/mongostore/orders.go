package mongostore

import (
	"context"

	"click-collect/internal/domain/order"
	"click-collect/internal/domain/slot"
	"click-collect/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SlotRepository struct {
	col *mongo.Collection
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.PickupSlot) error {
	_, err := r.col.InsertOne(ctx, slotDoc{
		ID:        s.ID().String(),
		Date:      s.Date(),
		TimeFrom:  s.TimeFrom(),
		TimeTo:    s.TimeTo(),
		Capacity:  s.Capacity(),
		Remaining: s.Remaining(),
		IsActive:  s.IsActive(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create pickup slot", err)
	}
	return nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.PickupSlot, error) {
	var d slotDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&d); err != nil {
		return nil, infra.WrapRepoErr("failed to find pickup slot", err)
	}
	s, err := d.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert pickup slot document", err)
	}
	return s, nil
}

func (r *SlotRepository) ListActive(ctx context.Context, date *string) ([]*slot.PickupSlot, error) {
	filter := bson.M{"isActive": true}
	if date != nil {
		filter["date"] = *date
	}
	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "timeFrom", Value: 1}}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pickup slots", err)
	}
	var docs []slotDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode pickup slots", err)
	}
	slots := make([]*slot.PickupSlot, 0, len(docs))
	for _, d := range docs {
		s, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert pickup slot document", err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (r *SlotRepository) Reserve(ctx context.Context, id uuid.UUID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id.String(), "isActive": true, "remaining": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"remaining": -1}},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve pickup slot", err)
	}
	if res.MatchedCount == 0 {
		return infra.NewRepoErr(infra.KindConflict, "pickup slot unavailable", nil)
	}
	return nil
}

type OrderRepository struct {
	col *mongo.Collection
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	d, err := fromOrder(o)
	if err != nil {
		return infra.WrapRepoErr("failed to convert order", err)
	}
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var d orderDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&d); err != nil {
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	o, err := d.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert order document", err)
	}
	return o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error) {
	cur, err := r.col.Find(ctx, bson.M{"userId": userID.String()},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode orders", err)
	}
	orders := make([]*order.Order, 0, len(docs))
	for _, d := range docs {
		o, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert order document", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
