package shared

import (
	"context"

	"click-collect/internal/domain/cart"
	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/favorite"
	"click-collect/internal/domain/order"
	"click-collect/internal/domain/rating"
	"click-collect/internal/domain/slot"
	"click-collect/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork is the single storage contract. Each backend (postgres, mongo,
// memory) provides one implementation, chosen at startup.
type UnitOfWork interface {
	// Within runs fn atomically; any error rolls back every write made through tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads gives non-transactional access. Do not call it from inside Within.
	Reads() Repositories
}

type Tx interface {
	Repositories
}

type Repositories interface {
	Users() UserRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Favorites() FavoriteRepository
	Ratings() RatingRepository
	Carts() CartRepository
	Slots() SlotRepository
	Orders() OrderRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByResetSelector(ctx context.Context, selector string) (*user.User, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *catalog.Category) error
	List(ctx context.Context) ([]*catalog.Category, error)
	FindBySlug(ctx context.Context, slug string) (*catalog.Category, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *catalog.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	// FindByIDForUpdate holds the product against concurrent writers until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Product, error)
	List(ctx context.Context, q catalog.ListQuery) ([]*catalog.Product, int, error)
	Suggest(ctx context.Context, term string, limit int) ([]*catalog.Product, error)
	// DecrementStock subtracts qty only while stock >= qty; otherwise a CONFLICT repository error.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
	UpdateRatingSummary(ctx context.Context, id uuid.UUID, s rating.Summary) error
}

type FavoriteRepository interface {
	Add(ctx context.Context, f *favorite.Favorite) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error)
}

type RatingRepository interface {
	Create(ctx context.Context, r *rating.Rating) error
	ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*rating.Rating, int, error)
	Summarize(ctx context.Context, productID uuid.UUID) (rating.Summary, error)
}

type CartRepository interface {
	ListItems(ctx context.Context, owner cart.Owner) ([]*cart.Item, error)
	FindItem(ctx context.Context, id uuid.UUID) (*cart.Item, error)
	FindItemByProduct(ctx context.Context, owner cart.Owner, productID uuid.UUID) (*cart.Item, error)
	SaveItem(ctx context.Context, item *cart.Item) error
	RemoveItem(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context, owner cart.Owner) error
}

type SlotRepository interface {
	Create(ctx context.Context, s *slot.PickupSlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*slot.PickupSlot, error)
	ListActive(ctx context.Context, date *string) ([]*slot.PickupSlot, error)
	// Reserve takes one place only from an active slot with remaining > 0; otherwise CONFLICT.
	Reserve(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	// Create persists the order together with its items.
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error)
}
