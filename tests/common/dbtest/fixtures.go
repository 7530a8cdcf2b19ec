//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	TestPassword = "password123"
	// bcrypt of TestPassword
	testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db Querier, username, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING",
		userID, username, email, testPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}
	return userID
}

func CreateTestCategory(t *testing.T, db Querier, name, slug string) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3) ON CONFLICT (slug) DO NOTHING",
		categoryID, name, slug)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM categories WHERE slug = $1", slug).Scan(&categoryID)
		require.NoError(t, err)
	}
	return categoryID
}

type ProductFixture struct {
	SKU          string
	Name         string
	Price        string
	Stock        int
	CategoryID   uuid.UUID
	IsPerishable bool
}

func CreateTestProduct(t *testing.T, db Querier, p ProductFixture) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO products (id, sku, name, price, stock, category_id, is_perishable)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)`,
		productID, p.SKU, p.Name, p.Price, p.Stock, p.CategoryID, p.IsPerishable)
	require.NoError(t, err)
	return productID
}

func CreateTestSlot(t *testing.T, db Querier, date, from, to string, capacity int) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO pickup_slots (id, date, time_from, time_to, capacity, remaining)
		 VALUES ($1, $2, $3, $4, $5, $5)`,
		slotID, date, from, to, capacity)
	require.NoError(t, err)
	return slotID
}

func ProductStock(t *testing.T, db Querier, productID uuid.UUID) int {
	t.Helper()
	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", productID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func SlotRemaining(t *testing.T, db Querier, slotID uuid.UUID) int {
	t.Helper()
	var remaining int
	err := db.QueryRow(context.Background(), "SELECT remaining FROM pickup_slots WHERE id = $1", slotID).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table, leaving the migration history.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions', 'schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
