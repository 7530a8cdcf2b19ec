// Package memstore keeps every record in process memory. It serves local
// development and the unit tests; all access is serialized by one mutex.
package memstore

import (
	"context"
	"sync"

	"click-collect/internal/domain/cart"
	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/favorite"
	"click-collect/internal/domain/order"
	"click-collect/internal/domain/rating"
	"click-collect/internal/domain/slot"
	"click-collect/internal/domain/user"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store holds value copies of the domain objects, so a caller mutating an
// entity it loaded never changes stored state without calling a repository.
type Store struct {
	mu sync.Mutex

	users      map[uuid.UUID]user.User
	categories map[uuid.UUID]catalog.Category
	products   map[uuid.UUID]catalog.Product
	favorites  map[uuid.UUID]favorite.Favorite
	ratings    map[uuid.UUID]rating.Rating
	cartItems  map[uuid.UUID]cart.Item
	slots      map[uuid.UUID]slot.PickupSlot
	orders     map[uuid.UUID]order.Order
}

func New() *Store {
	return &Store{
		users:      map[uuid.UUID]user.User{},
		categories: map[uuid.UUID]catalog.Category{},
		products:   map[uuid.UUID]catalog.Product{},
		favorites:  map[uuid.UUID]favorite.Favorite{},
		ratings:    map[uuid.UUID]rating.Rating{},
		cartItems:  map[uuid.UUID]cart.Item{},
		slots:      map[uuid.UUID]slot.PickupSlot{},
		orders:     map[uuid.UUID]order.Order{},
	}
}

func NewUoW(s *Store) shared.UnitOfWork {
	return s
}

// Within holds the store lock for the whole of fn. Writes are journaled and
// undone in reverse order when fn fails or panics.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	j := &journal{}
	committed := false
	defer func() {
		if !committed {
			j.rollback()
		}
	}()

	if err := fn(ctx, &view{s: s, j: j}); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *Store) Reads() shared.Repositories {
	return &view{s: s, lock: true}
}

type journal struct {
	undo []func()
}

func (j *journal) record(f func()) {
	if j != nil {
		j.undo = append(j.undo, f)
	}
}

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

func put[K comparable, V any](j *journal, m map[K]V, k K, v V) {
	old, existed := m[k]
	j.record(func() {
		if existed {
			m[k] = old
		} else {
			delete(m, k)
		}
	})
	m[k] = v
}

func remove[K comparable, V any](j *journal, m map[K]V, k K) bool {
	old, existed := m[k]
	if !existed {
		return false
	}
	j.record(func() { m[k] = old })
	delete(m, k)
	return true
}

// view is one set of repositories: journaled inside Within, self-locking for Reads.
type view struct {
	s    *Store
	j    *journal
	lock bool
}

func (v *view) do(fn func()) {
	if v.lock {
		v.s.mu.Lock()
		defer v.s.mu.Unlock()
	}
	fn()
}

func (v *view) Users() shared.UserRepository          { return userRepo{v} }
func (v *view) Categories() shared.CategoryRepository { return categoryRepo{v} }
func (v *view) Products() shared.ProductRepository    { return productRepo{v} }
func (v *view) Favorites() shared.FavoriteRepository  { return favoriteRepo{v} }
func (v *view) Ratings() shared.RatingRepository      { return ratingRepo{v} }
func (v *view) Carts() shared.CartRepository          { return cartRepo{v} }
func (v *view) Slots() shared.SlotRepository          { return slotRepo{v} }
func (v *view) Orders() shared.OrderRepository        { return orderRepo{v} }

func paginate[T any](all []T, limit, offset int) []T {
	if offset < 0 || offset >= len(all) {
		return []T{}
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}
