//go:build unit

package cart_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"click-collect/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOwner(t *testing.T) {
	userID := uuid.New()

	t.Run("user wins over session", func(t *testing.T) {
		o, err := cart.NewOwner(&userID, "sess-1")
		require.NoError(t, err)
		assert.False(t, o.IsGuest())
		assert.Equal(t, userID, *o.UserID())
		assert.Empty(t, o.SessionID())
	})

	t.Run("guest session", func(t *testing.T) {
		o, err := cart.NewOwner(nil, " sess-1 ")
		require.NoError(t, err)
		assert.True(t, o.IsGuest())
		assert.Equal(t, "sess-1", o.SessionID())
	})

	t.Run("neither", func(t *testing.T) {
		_, err := cart.NewOwner(nil, "  ")
		assert.ErrorIs(t, err, cart.ErrNoOwner)
	})

	t.Run("session id too long", func(t *testing.T) {
		_, err := cart.NewOwner(nil, strings.Repeat("s", cart.MaxSessionIDLength+1))
		assert.ErrorIs(t, err, cart.ErrNoOwner)
	})
}

func TestOwns(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	mine := cart.UserOwner(userID)
	guest, _ := cart.NewOwner(nil, "sess-1")
	otherGuest, _ := cart.NewOwner(nil, "sess-2")

	userItem, err := cart.NewItem(mine, uuid.New(), 1, now)
	require.NoError(t, err)
	guestItem, err := cart.NewItem(guest, uuid.New(), 1, now)
	require.NoError(t, err)

	assert.True(t, mine.Owns(userItem))
	assert.False(t, mine.Owns(guestItem))
	assert.True(t, guest.Owns(guestItem))
	assert.False(t, guest.Owns(userItem))
	assert.False(t, otherGuest.Owns(guestItem))
	assert.False(t, cart.UserOwner(uuid.New()).Owns(userItem))
}

func TestItemQuantity(t *testing.T) {
	_, err := cart.NewItem(cart.UserOwner(uuid.New()), uuid.New(), 0, time.Now())
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

	item, err := cart.NewItem(cart.UserOwner(uuid.New()), uuid.New(), 2, time.Now())
	require.NoError(t, err)

	require.NoError(t, item.Add(3))
	assert.Equal(t, 5, item.Quantity())

	assert.ErrorIs(t, item.Add(0), cart.ErrInvalidQuantity)
	assert.ErrorIs(t, item.SetQuantity(0), cart.ErrInvalidQuantity)
	assert.Equal(t, 5, item.Quantity())

	require.NoError(t, item.SetQuantity(1))
	assert.Equal(t, 1, item.Quantity())

	assert.ErrorIs(t, item.Add(math.MaxInt), cart.ErrInvalidQuantity)
	assert.Equal(t, 1, item.Quantity())
}
