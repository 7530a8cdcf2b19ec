//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/slot"
	"click-collect/internal/infra"
	"click-collect/internal/infra/memstore"
	"click-collect/internal/usecase/shared"
	"click-collect/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type storeSuite struct {
	suite.Suite
	ctx      context.Context
	uow      shared.UnitOfWork
	category *catalog.Category
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(storeSuite))
}

func (s *storeSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = memstore.NewUoW(memstore.New())

	c, err := builder.NewCategoryBuilder().BuildDomain()
	s.Require().NoError(err)
	s.category = c
	s.write(func(tx shared.Tx) error { return tx.Categories().Create(s.ctx, c) })
}

func (s *storeSuite) write(fn func(tx shared.Tx) error) {
	s.T().Helper()
	err := s.uow.Within(s.ctx, func(_ context.Context, tx shared.Tx) error { return fn(tx) })
	s.Require().NoError(err)
}

func (s *storeSuite) product(stock int) *catalog.Product {
	s.T().Helper()
	p, err := builder.NewProductBuilder().
		WithSKU("SKU-" + uuid.NewString()[:8]).
		WithStock(stock).
		WithCategoryID(s.category.ID()).
		BuildDomain()
	s.Require().NoError(err)
	s.write(func(tx shared.Tx) error { return tx.Products().Create(s.ctx, p) })
	return p
}

func (s *storeSuite) stockOf(id uuid.UUID) int {
	s.T().Helper()
	p, err := s.uow.Reads().Products().FindByID(s.ctx, id)
	s.Require().NoError(err)
	return p.Stock()
}

func (s *storeSuite) TestDecrementStock() {
	s.Run("takes exactly the available stock", func() {
		p := s.product(3)
		s.write(func(tx shared.Tx) error { return tx.Products().DecrementStock(s.ctx, p.ID(), 3) })
		s.Equal(0, s.stockOf(p.ID()))
	})

	s.Run("never goes negative", func() {
		p := s.product(2)
		err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Products().DecrementStock(ctx, p.ID(), 3)
		})
		s.True(infra.IsKind(err, infra.KindConflict))
		s.Equal(2, s.stockOf(p.ID()))
	})

	s.Run("unknown product is a conflict", func() {
		err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Products().DecrementStock(ctx, uuid.New(), 1)
		})
		s.True(infra.IsKind(err, infra.KindConflict))
	})
}

func (s *storeSuite) TestWithinRollsBack() {
	s.Run("error undoes every write", func() {
		p := s.product(5)
		sl, err := builder.NewSlotBuilder().WithCapacity(2).BuildDomain()
		s.Require().NoError(err)
		s.write(func(tx shared.Tx) error { return tx.Slots().Create(s.ctx, sl) })

		boom := errors.New("boom")
		err = s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Products().DecrementStock(ctx, p.ID(), 4); err != nil {
				return err
			}
			if err := tx.Slots().Reserve(ctx, sl.ID()); err != nil {
				return err
			}
			return boom
		})
		s.ErrorIs(err, boom)

		s.Equal(5, s.stockOf(p.ID()))
		got, err := s.uow.Reads().Slots().FindByID(s.ctx, sl.ID())
		s.Require().NoError(err)
		s.Equal(2, got.Remaining())
	})

	s.Run("panic undoes writes and releases the lock", func() {
		p := s.product(5)
		s.Panics(func() {
			_ = s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
				_ = tx.Products().DecrementStock(ctx, p.ID(), 1)
				panic("boom")
			})
		})
		s.Equal(5, s.stockOf(p.ID()))
	})

	s.Run("created records disappear", func() {
		var id uuid.UUID
		err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			p, err := builder.NewProductBuilder().WithSKU("ROLLBACK-1").WithCategoryID(s.category.ID()).BuildDomain()
			if err != nil {
				return err
			}
			id = p.ID()
			if err := tx.Products().Create(ctx, p); err != nil {
				return err
			}
			return errors.New("abort")
		})
		s.Error(err)
		_, err = s.uow.Reads().Products().FindByID(s.ctx, id)
		s.True(infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("cancelled context never runs fn", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		called := false
		err := s.uow.Within(ctx, func(context.Context, shared.Tx) error {
			called = true
			return nil
		})
		s.ErrorIs(err, context.Canceled)
		s.False(called)
	})
}

func (s *storeSuite) TestListPaging() {
	for i := 0; i < 30; i++ {
		s.product(5)
	}

	q := catalog.NewListQuery("", nil, "", 2, 20)
	products, total, err := s.uow.Reads().Products().List(s.ctx, q)
	s.Require().NoError(err)
	s.Equal(30, total)
	s.Len(products, 10)

	for _, page := range []int{1<<62 + 2, 1<<60 + 1} {
		q := catalog.NewListQuery("", nil, "", page, 8)
		products, total, err := s.uow.Reads().Products().List(s.ctx, q)
		s.Require().NoError(err)
		s.Equal(30, total)
		s.Empty(products)
	}
}

func (s *storeSuite) TestStoredValuesAreCopies() {
	p := s.product(5)
	loaded, err := s.uow.Reads().Products().FindByID(s.ctx, p.ID())
	s.Require().NoError(err)

	s.True(loaded.TakeStock(5))
	s.Equal(5, s.stockOf(p.ID()))
}

func (s *storeSuite) TestProductConstraints() {
	s.Run("duplicate sku", func() {
		p, err := builder.NewProductBuilder().WithCategoryID(s.category.ID()).BuildDomain()
		s.Require().NoError(err)
		dup, err := builder.NewProductBuilder().WithCategoryID(s.category.ID()).BuildDomain()
		s.Require().NoError(err)

		s.write(func(tx shared.Tx) error { return tx.Products().Create(s.ctx, p) })
		err = s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Products().Create(ctx, dup)
		})
		s.True(infra.IsKind(err, infra.KindDuplicateKey))
	})

	s.Run("unknown category", func() {
		p, err := builder.NewProductBuilder().WithSKU("ORPHAN-1").WithCategoryID(uuid.New()).BuildDomain()
		s.Require().NoError(err)
		err = s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Products().Create(ctx, p)
		})
		s.True(infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func (s *storeSuite) TestSlots() {
	late, err := builder.NewSlotBuilder().WithWindow("14:00", "16:00").BuildDomain()
	s.Require().NoError(err)
	early, err := builder.NewSlotBuilder().WithWindow("10:00", "12:00").WithCapacity(1).BuildDomain()
	s.Require().NoError(err)
	other, err := builder.NewSlotBuilder().WithDate("2026-03-03").BuildDomain()
	s.Require().NoError(err)
	s.write(func(tx shared.Tx) error {
		for _, sl := range []*slot.PickupSlot{late, early, other} {
			if err := tx.Slots().Create(s.ctx, sl); err != nil {
				return err
			}
		}
		return nil
	})

	s.Run("ListActive filters by date and sorts by start", func() {
		date := "2026-03-02"
		got, err := s.uow.Reads().Slots().ListActive(s.ctx, &date)
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal(early.ID(), got[0].ID())
		s.Equal(late.ID(), got[1].ID())

		all, err := s.uow.Reads().Slots().ListActive(s.ctx, nil)
		s.Require().NoError(err)
		s.Len(all, 3)
	})

	s.Run("Reserve stops at zero", func() {
		s.write(func(tx shared.Tx) error { return tx.Slots().Reserve(s.ctx, early.ID()) })
		err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Slots().Reserve(ctx, early.ID())
		})
		s.True(infra.IsKind(err, infra.KindConflict))

		got, err := s.uow.Reads().Slots().FindByID(s.ctx, early.ID())
		s.Require().NoError(err)
		s.Equal(0, got.Remaining())
	})
}

func TestUsersUnique(t *testing.T) {
	ctx := context.Background()
	uow := memstore.NewUoW(memstore.New())

	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	}))

	tests := []struct {
		name string
		user *builder.UserBuilder
	}{
		{name: "same email", user: builder.NewUserBuilder().WithUsername("someone")},
		{name: "same username", user: builder.NewUserBuilder().WithEmail("other@example.com")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dup, err := tt.user.BuildDomain()
			require.NoError(t, err)
			err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Users().Create(ctx, dup)
			})
			assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		})
	}

	found, err := uow.Reads().Users().FindByEmail(ctx, "amina@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), found.ID())
}
