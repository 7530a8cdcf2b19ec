package cart

import (
	"math"
	"strings"
	"time"

	"click-collect/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoOwner         = errs.Class("cart requires a user or a session id", errs.ErrValidation)
	ErrInvalidQuantity = errs.Class("quantity must be at least 1", errs.ErrValidation)
	ErrItemNotFound    = errs.Class("cart item not found", errs.ErrNotFound)
)

const MaxSessionIDLength = 128

// Owner identifies a cart: a signed-in user, or else a guest session.
type Owner struct {
	userID    *uuid.UUID
	sessionID string
}

func NewOwner(userID *uuid.UUID, sessionID string) (Owner, error) {
	if userID != nil {
		return Owner{userID: userID}, nil
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || len(sessionID) > MaxSessionIDLength {
		return Owner{}, ErrNoOwner
	}
	return Owner{sessionID: sessionID}, nil
}

func UserOwner(userID uuid.UUID) Owner {
	return Owner{userID: &userID}
}

func (o Owner) UserID() *uuid.UUID { return o.userID }
func (o Owner) SessionID() string  { return o.sessionID }
func (o Owner) IsGuest() bool      { return o.userID == nil }

func (o Owner) Owns(item *Item) bool {
	if o.userID != nil {
		return item.owner.userID != nil && *item.owner.userID == *o.userID
	}
	return item.owner.userID == nil && item.owner.sessionID == o.sessionID
}

type Item struct {
	id        uuid.UUID
	owner     Owner
	productID uuid.UUID
	quantity  int
	createdAt time.Time
}

func NewItem(owner Owner, productID uuid.UUID, quantity int, now time.Time) (*Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &Item{id: uuid.New(), owner: owner, productID: productID, quantity: quantity, createdAt: now}, nil
}

func ReconstructItem(id uuid.UUID, owner Owner, productID uuid.UUID, quantity int, createdAt time.Time) *Item {
	return &Item{id: id, owner: owner, productID: productID, quantity: quantity, createdAt: createdAt}
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) Owner() Owner         { return i.owner }
func (i *Item) ProductID() uuid.UUID { return i.productID }
func (i *Item) Quantity() int        { return i.quantity }
func (i *Item) CreatedAt() time.Time { return i.createdAt }

func (i *Item) SetQuantity(q int) error {
	if q < 1 {
		return ErrInvalidQuantity
	}
	i.quantity = q
	return nil
}

// Add merges a repeated add of the same product.
func (i *Item) Add(q int) error {
	if q < 1 || i.quantity > math.MaxInt-q {
		return ErrInvalidQuantity
	}
	i.quantity += q
	return nil
}

func ReconstructOwner(userID *uuid.UUID, sessionID string) Owner {
	if userID != nil {
		return Owner{userID: userID}
	}
	return Owner{sessionID: sessionID}
}
