package mongostore

import (
	"context"
	"regexp"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/rating"
	"click-collect/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository struct {
	col      *mongo.Collection
	products *mongo.Collection
}

func (r *CategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	_, err := r.col.InsertOne(ctx, categoryDoc{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Slug:        c.Slug(),
		ImageURL:    c.ImageURL(),
		Description: c.Description(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create category", err)
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*catalog.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode categories", err)
	}
	counts, err := r.activeCounts(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]*catalog.Category, 0, len(docs))
	for _, d := range docs {
		c, err := d.toDomain(counts[d.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert category document", err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	var d categoryDoc
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&d); err != nil {
		return nil, infra.WrapRepoErr("failed to find category by slug", err)
	}
	n, err := r.products.CountDocuments(ctx, bson.M{"categoryId": d.ID, "isActive": true})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count category products", err)
	}
	c, err := d.toDomain(int(n))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert category document", err)
	}
	return c, nil
}

// activeCounts groups active products by category in one aggregation.
func (r *CategoryRepository) activeCounts(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"isActive": true}}},
		{{Key: "$group", Value: bson.M{"_id": "$categoryId", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count category products", err)
	}
	var rows []struct {
		ID    string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to decode category counts", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}

func (d categoryDoc) toDomain(productCount int) (*catalog.Category, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return catalog.ReconstructCategory(id, d.Name, d.Slug, d.ImageURL, d.Description, productCount), nil
}

type ProductRepository struct {
	col *mongo.Collection
}

func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	d, err := fromProduct(p)
	if err != nil {
		return infra.WrapRepoErr("failed to convert product", err)
	}
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var d productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&d); err != nil {
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	p, err := d.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product document", err)
	}
	return p, nil
}

// FindByIDForUpdate bumps lockVersion so the product carries a write in this
// transaction; a concurrent transaction touching it hits a write conflict and
// is retried by WithTransaction.
func (r *ProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var d productDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$inc": bson.M{"lockVersion": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock product", err)
	}
	p, err := d.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product document", err)
	}
	return p, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return []*catalog.Product{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
}

func (r *ProductRepository) List(ctx context.Context, q catalog.ListQuery) ([]*catalog.Product, int, error) {
	filter := bson.M{"isActive": true}
	if q.Search != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(q.Search), "$options": "i"}
	}
	if q.CategoryID != nil {
		filter["categoryId"] = q.CategoryID.String()
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count products", err)
	}

	opts := options.Find().
		SetSort(productSort(q.Sort)).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.PageSize))
	products, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return products, int(total), nil
}

func productSort(s catalog.Sort) bson.D {
	tail := bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}
	switch s {
	case catalog.SortPriceAsc:
		return append(bson.D{{Key: "price", Value: 1}}, tail...)
	case catalog.SortPriceDesc:
		return append(bson.D{{Key: "price", Value: -1}}, tail...)
	case catalog.SortPopular:
		return append(bson.D{{Key: "ratingCount", Value: -1}}, tail...)
	default:
		return tail
	}
}

func (r *ProductRepository) Suggest(ctx context.Context, term string, limit int) ([]*catalog.Product, error) {
	filter := bson.M{
		"isActive": true,
		"name":     bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"},
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

// DecrementStock only matches while stock covers qty, so concurrent
// orders can never drive it negative.
func (r *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id.String(), "isActive": true, "stock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stock": -qty}},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	if res.MatchedCount == 0 {
		return infra.NewRepoErr(infra.KindConflict, "insufficient stock", nil)
	}
	return nil
}

func (r *ProductRepository) UpdateRatingSummary(ctx context.Context, id uuid.UUID, s rating.Summary) error {
	avg, err := toDecimal128(s.Average)
	if err != nil {
		return infra.WrapRepoErr("failed to convert rating average", err)
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{"ratingAverage": avg, "ratingCount": s.Count}},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product rating", err)
	}
	if res.MatchedCount == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "product not found", nil)
	}
	return nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*catalog.Product, error) {
	cur, err := r.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products", err)
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode products", err)
	}
	products := make([]*catalog.Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert product document", err)
		}
		products = append(products, p)
	}
	return products, nil
}
