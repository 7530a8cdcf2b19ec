package favorite

import (
	"time"

	"click-collect/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAlreadyFavorite = errs.Class("product already in favorites", errs.ErrConflict)

type Favorite struct {
	id        uuid.UUID
	userID    uuid.UUID
	productID uuid.UUID
	createdAt time.Time
}

func NewFavorite(userID, productID uuid.UUID, now time.Time) *Favorite {
	return &Favorite{id: uuid.New(), userID: userID, productID: productID, createdAt: now}
}

func ReconstructFavorite(id, userID, productID uuid.UUID, createdAt time.Time) *Favorite {
	return &Favorite{id: id, userID: userID, productID: productID, createdAt: createdAt}
}

func (f *Favorite) ID() uuid.UUID        { return f.id }
func (f *Favorite) UserID() uuid.UUID    { return f.userID }
func (f *Favorite) ProductID() uuid.UUID { return f.productID }
func (f *Favorite) CreatedAt() time.Time { return f.createdAt }
