package mongostore

import (
	"context"

	"click-collect/internal/pkg/errs"
	"click-collect/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var errSessionStart = errs.New("failed to start mongodb session")

type UoW struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewUoW(client *mongo.Client, db *mongo.Database) shared.UnitOfWork {
	return &UoW{client: client, db: db}
}

// Within runs fn in a snapshot transaction. The driver retries fn on
// transient transaction errors, so fn must only touch storage through tx.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	sess, err := u.client.StartSession()
	if err != nil {
		return errs.Mark(err, errSessionStart)
	}
	defer sess.EndSession(ctx)

	opts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, newRepositories(u.db))
	}, opts)
	return err
}

func (u *UoW) Reads() shared.Repositories {
	return newRepositories(u.db)
}

type repositories struct {
	db *mongo.Database
}

func newRepositories(db *mongo.Database) *repositories {
	return &repositories{db: db}
}

func (r *repositories) Users() shared.UserRepository {
	return &UserRepository{col: r.db.Collection(colUsers)}
}

func (r *repositories) Categories() shared.CategoryRepository {
	return &CategoryRepository{col: r.db.Collection(colCategories), products: r.db.Collection(colProducts)}
}

func (r *repositories) Products() shared.ProductRepository {
	return &ProductRepository{col: r.db.Collection(colProducts)}
}

func (r *repositories) Favorites() shared.FavoriteRepository {
	return &FavoriteRepository{col: r.db.Collection(colFavorites)}
}

func (r *repositories) Ratings() shared.RatingRepository {
	return &RatingRepository{col: r.db.Collection(colRatings)}
}

func (r *repositories) Carts() shared.CartRepository {
	return &CartRepository{col: r.db.Collection(colCartItems)}
}

func (r *repositories) Slots() shared.SlotRepository {
	return &SlotRepository{col: r.db.Collection(colSlots)}
}

func (r *repositories) Orders() shared.OrderRepository {
	return &OrderRepository{col: r.db.Collection(colOrders)}
}
