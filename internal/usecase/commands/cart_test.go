//go:build unit

package commands_test

import (
	"context"
	"testing"

	"click-collect/internal/domain/cart"
	"click-collect/internal/domain/catalog"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CartCommandsTestSuite struct {
	suite.Suite
	ctx     context.Context
	uow     shared.UnitOfWork
	product *catalog.Product
	cmds    commands.CartCommands
	guest   cart.Owner
	member  cart.Owner
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow, s.product = seedProduct(s.T(), 10)
	s.cmds = commands.NewCartCommands(s.uow, clock.NewMockClock(testNow))

	var err error
	s.guest, err = cart.NewOwner(nil, "session-abc")
	s.Require().NoError(err)
	s.member = cart.UserOwner(uuid.New())
}

func (s *CartCommandsTestSuite) items(owner cart.Owner) []*cart.Item {
	items, err := s.uow.Reads().Carts().ListItems(s.ctx, owner)
	s.Require().NoError(err)
	return items
}

func (s *CartCommandsTestSuite) TestAddItem_MergesSameProduct() {
	first, err := s.cmds.AddItem(s.ctx, s.guest, s.product.ID(), 1)
	s.Require().NoError(err)
	second, err := s.cmds.AddItem(s.ctx, s.guest, s.product.ID(), 3)
	s.Require().NoError(err)

	s.Equal(first, second)
	items := s.items(s.guest)
	s.Require().Len(items, 1)
	s.Equal(4, items[0].Quantity())
}

func (s *CartCommandsTestSuite) TestAddItem_OwnersAreSeparate() {
	_, err := s.cmds.AddItem(s.ctx, s.guest, s.product.ID(), 1)
	s.Require().NoError(err)
	_, err = s.cmds.AddItem(s.ctx, s.member, s.product.ID(), 2)
	s.Require().NoError(err)

	other, err := cart.NewOwner(nil, "session-xyz")
	s.Require().NoError(err)

	s.Len(s.items(s.guest), 1)
	s.Len(s.items(s.member), 1)
	s.Empty(s.items(other))
}

func (s *CartCommandsTestSuite) TestAddItem_Rejects() {
	_, err := s.cmds.AddItem(s.ctx, s.guest, s.product.ID(), 0)
	s.ErrorIs(err, cart.ErrInvalidQuantity)

	_, err = s.cmds.AddItem(s.ctx, s.guest, uuid.New(), 1)
	s.ErrorIs(err, catalog.ErrProductNotFound)

	s.Empty(s.items(s.guest))
}

func (s *CartCommandsTestSuite) TestUpdateAndRemove() {
	id, err := s.cmds.AddItem(s.ctx, s.member, s.product.ID(), 1)
	s.Require().NoError(err)

	s.Run("another owner cannot touch the item", func() {
		s.ErrorIs(s.cmds.UpdateItem(s.ctx, s.guest, id, 5), cart.ErrItemNotFound)
		s.ErrorIs(s.cmds.RemoveItem(s.ctx, s.guest, id), cart.ErrItemNotFound)
		s.Equal(1, s.items(s.member)[0].Quantity())
	})

	s.Run("quantity must stay positive", func() {
		s.ErrorIs(s.cmds.UpdateItem(s.ctx, s.member, id, 0), cart.ErrInvalidQuantity)
	})

	s.Run("owner updates then removes", func() {
		s.Require().NoError(s.cmds.UpdateItem(s.ctx, s.member, id, 6))
		s.Equal(6, s.items(s.member)[0].Quantity())

		s.Require().NoError(s.cmds.RemoveItem(s.ctx, s.member, id))
		s.Empty(s.items(s.member))
		s.ErrorIs(s.cmds.RemoveItem(s.ctx, s.member, id), cart.ErrItemNotFound)
	})
}

func (s *CartCommandsTestSuite) TestClear() {
	_, err := s.cmds.AddItem(s.ctx, s.guest, s.product.ID(), 2)
	s.Require().NoError(err)
	_, err = s.cmds.AddItem(s.ctx, s.member, s.product.ID(), 2)
	s.Require().NoError(err)

	s.Require().NoError(s.cmds.Clear(s.ctx, s.guest))

	s.Empty(s.items(s.guest))
	s.Len(s.items(s.member), 1)
}
