//go:build e2e

package mongostore_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/slot"
	"click-collect/internal/infra"
	"click-collect/internal/infra/cache"
	"click-collect/internal/infra/mongostore"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/pkg/config"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/shared"
	"click-collect/tests/common/builder"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	mongoContainerOnce sync.Once
	mongoContainer     testcontainers.Container
)

// startReplicaSet runs a single-node replica set; Within needs one for transactions.
func startReplicaSet(t *testing.T) string {
	mongoContainerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		mongoContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "mongo:7",
				ExposedPorts: []string{"27017/tcp"},
				Cmd:          []string{"--replSet", "rs0", "--bind_ip_all"},
				WaitingFor:   wait.ForListeningPort(nat.Port("27017/tcp")).WithStartupTimeout(90 * time.Second),
				Labels:       map[string]string{"purpose": "click-collect-e2e"},
			},
			Started: true,
		})
		require.NoError(t, err, "failed to start mongo container")

		code, _, err := mongoContainer.Exec(ctx, []string{
			"mongosh", "--quiet", "--eval",
			"rs.initiate({_id: 'rs0', members: [{_id: 0, host: 'localhost:27017'}]})",
		})
		require.NoError(t, err)
		require.Zero(t, code, "rs.initiate failed")
	})

	host, err := mongoContainer.Host(context.Background())
	require.NoError(t, err)
	port, err := mongoContainer.MappedPort(context.Background(), "27017/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("mongodb://%s:%s/?directConnection=true", host, port.Port())
}

type mongoStoreSuite struct {
	suite.Suite
	ctx    context.Context
	client *mongo.Client
	db     *mongo.Database
	uow    shared.UnitOfWork

	category *catalog.Category
}

func TestMongoStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(mongoStoreSuite))
}

func (s *mongoStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	uri := startReplicaSet(s.T())

	client, _, cleanup, err := mongostore.Connect(s.ctx, config.MongoConfig{URI: uri, DBName: "unused"})
	s.Require().NoError(err)
	s.T().Cleanup(cleanup)
	s.client = client

	s.Require().Eventually(func() bool {
		var hello struct {
			IsWritablePrimary bool `bson:"isWritablePrimary"`
		}
		err := client.Database("admin").RunCommand(s.ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
		return err == nil && hello.IsWritablePrimary
	}, 30*time.Second, 250*time.Millisecond, "replica set never elected a primary")
}

func (s *mongoStoreSuite) SetupTest() {
	s.db = s.client.Database("testdb_" + strings.ReplaceAll(uuid.NewString(), "-", ""))
	s.Require().NoError(mongostore.EnsureIndexes(s.ctx, s.db))
	s.uow = mongostore.NewUoW(s.client, s.db)

	c, err := builder.NewCategoryBuilder().BuildDomain()
	s.Require().NoError(err)
	s.write(func(ctx context.Context, tx shared.Tx) error { return tx.Categories().Create(ctx, c) })
	s.category = c
}

func (s *mongoStoreSuite) TearDownTest() {
	s.Require().NoError(s.db.Drop(context.Background()))
}

func (s *mongoStoreSuite) write(fn func(ctx context.Context, tx shared.Tx) error) {
	s.T().Helper()
	s.Require().NoError(s.uow.Within(s.ctx, fn))
}

func (s *mongoStoreSuite) product(sku, price string, stock int) *catalog.Product {
	s.T().Helper()
	p, err := builder.NewProductBuilder().
		WithSKU(sku).
		WithPrice(price).
		WithStock(stock).
		WithCategoryID(s.category.ID()).
		BuildDomain()
	s.Require().NoError(err)
	s.write(func(ctx context.Context, tx shared.Tx) error { return tx.Products().Create(ctx, p) })
	return p
}

func (s *mongoStoreSuite) slot(capacity int) *slot.PickupSlot {
	s.T().Helper()
	sl, err := builder.NewSlotBuilder().WithCapacity(capacity).BuildDomain()
	s.Require().NoError(err)
	s.write(func(ctx context.Context, tx shared.Tx) error { return tx.Slots().Create(ctx, sl) })
	return sl
}

func (s *mongoStoreSuite) stockOf(id uuid.UUID) int {
	s.T().Helper()
	p, err := s.uow.Reads().Products().FindByID(s.ctx, id)
	s.Require().NoError(err)
	return p.Stock()
}

func (s *mongoStoreSuite) TestEnsureIndexes() {
	s.Require().NoError(mongostore.EnsureIndexes(s.ctx, s.db), "second run must be a no-op")

	s.product("FL-BAN-001", "1200", 5)
	dup, err := builder.NewProductBuilder().WithSKU("FL-BAN-001").WithCategoryID(s.category.ID()).BuildDomain()
	s.Require().NoError(err)

	err = s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Create(ctx, dup)
	})
	s.True(infra.IsKind(err, infra.KindDuplicateKey), "unexpected error: %v", err)
}

func (s *mongoStoreSuite) TestDecrementStock() {
	p := s.product("FL-TOM-001", "850.50", 3)
	products := s.uow.Reads().Products()

	s.Require().NoError(products.DecrementStock(s.ctx, p.ID(), 2))
	s.Equal(1, s.stockOf(p.ID()))

	err := products.DecrementStock(s.ctx, p.ID(), 2)
	s.True(infra.IsKind(err, infra.KindConflict))
	s.Equal(1, s.stockOf(p.ID()))

	s.Require().NoError(products.DecrementStock(s.ctx, p.ID(), 1))
	s.Equal(0, s.stockOf(p.ID()))
}

func (s *mongoStoreSuite) TestReserveSlot() {
	sl := s.slot(1)
	slots := s.uow.Reads().Slots()

	s.Require().NoError(slots.Reserve(s.ctx, sl.ID()))
	err := slots.Reserve(s.ctx, sl.ID())
	s.True(infra.IsKind(err, infra.KindConflict))

	got, err := slots.FindByID(s.ctx, sl.ID())
	s.Require().NoError(err)
	s.Equal(0, got.Remaining())
}

func (s *mongoStoreSuite) TestWithinRollsBack() {
	p := s.product("FL-BAN-001", "1200", 10)
	full := s.slot(1)
	s.Require().NoError(s.uow.Reads().Slots().Reserve(s.ctx, full.ID()))

	s.Run("guarded update failure undoes earlier writes", func() {
		err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Products().DecrementStock(ctx, p.ID(), 4); err != nil {
				return err
			}
			return tx.Slots().Reserve(ctx, full.ID())
		})
		s.True(infra.IsKind(err, infra.KindConflict))
		s.Equal(10, s.stockOf(p.ID()))
	})

	s.Run("callback error undoes inserts", func() {
		boom := errors.New("boom")
		c, err := builder.NewCategoryBuilder().WithName("Boissons").WithSlug("boissons").BuildDomain()
		s.Require().NoError(err)

		err = s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Categories().Create(ctx, c); err != nil {
				return err
			}
			return boom
		})
		s.ErrorIs(err, boom)

		_, err = s.uow.Reads().Categories().FindBySlug(s.ctx, "boissons")
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *mongoStoreSuite) TestDecimalRoundTrip() {
	p := s.product("FL-TOM-001", "850.50", 2)

	got, err := s.uow.Reads().Products().FindByID(s.ctx, p.ID())
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("850.50").Equal(got.Price()), "price %s", got.Price())
	s.True(got.RatingAverage().IsZero())
}

func (s *mongoStoreSuite) TestListSortsByNumericPrice() {
	s.product("SKU-A", "1200", 1)
	s.product("SKU-B", "850.50", 1)
	s.product("SKU-C", "99.99", 1)
	s.product("SKU-D", "2500", 1)

	prices := func(sort string) []string {
		products, total, err := s.uow.Reads().Products().List(s.ctx, catalog.NewListQuery("", nil, sort, 1, 20))
		s.Require().NoError(err)
		s.Equal(4, total)
		out := make([]string, len(products))
		for i, p := range products {
			out[i] = p.Price().StringFixed(2)
		}
		return out
	}

	s.Equal([]string{"99.99", "850.50", "1200.00", "2500.00"}, prices("price_asc"))
	s.Equal([]string{"2500.00", "1200.00", "850.50", "99.99"}, prices("price_desc"))

	products, total, err := s.uow.Reads().Products().List(s.ctx, catalog.NewListQuery("", nil, "price_asc", 2, 3))
	s.Require().NoError(err)
	s.Equal(4, total)
	s.Require().Len(products, 1)
	s.Equal("2500.00", products[0].Price().StringFixed(2))
}

func (s *mongoStoreSuite) TestConcurrentRatings() {
	p := s.product("EP-RIZ-001", "2500", 40)
	cmds := commands.NewRatingCommands(s.uow, cache.Nop{}, clock.NewRealClock())

	const raters = 6
	errs := make([]error, raters)
	var wg sync.WaitGroup
	for i := range raters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = cmds.Rate(s.ctx, uuid.New(), p.ID(), commands.RateInput{Rating: 1 + i%5})
		}()
	}
	wg.Wait()
	for _, err := range errs {
		s.Require().NoError(err)
	}

	got, err := s.uow.Reads().Products().FindByID(s.ctx, p.ID())
	s.Require().NoError(err)
	summary, err := s.uow.Reads().Ratings().Summarize(s.ctx, p.ID())
	s.Require().NoError(err)

	s.Equal(raters, summary.Count)
	s.Equal(summary.Count, got.RatingCount())
	s.True(summary.Average.Equal(got.RatingAverage()))
}
