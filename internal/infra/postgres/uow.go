package postgres

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	sqlc "click-collect/internal/infra/sqlc/generated"
	"click-collect/internal/pkg/errs"
	"click-collect/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type UoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &UoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough: every contended write is a guarded UPDATE whose
// row lock serializes competing transactions.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *UoW) Reads() shared.Repositories {
	return newRepositories(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *UoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 50 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, newRepositories(u.q, pgxTx))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// repositories binds every repository to one DBTX: the pool for reads, a
// pgx.Tx inside Within. Repositories are created on first use.
type repositories struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	users      shared.UserRepository
	categories shared.CategoryRepository
	products   shared.ProductRepository
	favorites  shared.FavoriteRepository
	ratings    shared.RatingRepository
	carts      shared.CartRepository
	slots      shared.SlotRepository
	orders     shared.OrderRepository
}

func newRepositories(q *sqlc.Queries, dbtx sqlc.DBTX) *repositories {
	return &repositories{q: q, dbtx: dbtx}
}

func (r *repositories) Users() shared.UserRepository {
	if r.users == nil {
		r.users = NewUserRepository(r.q, r.dbtx)
	}
	return r.users
}

func (r *repositories) Categories() shared.CategoryRepository {
	if r.categories == nil {
		r.categories = NewCategoryRepository(r.q, r.dbtx)
	}
	return r.categories
}

func (r *repositories) Products() shared.ProductRepository {
	if r.products == nil {
		r.products = NewProductRepository(r.q, r.dbtx)
	}
	return r.products
}

func (r *repositories) Favorites() shared.FavoriteRepository {
	if r.favorites == nil {
		r.favorites = NewFavoriteRepository(r.q, r.dbtx)
	}
	return r.favorites
}

func (r *repositories) Ratings() shared.RatingRepository {
	if r.ratings == nil {
		r.ratings = NewRatingRepository(r.q, r.dbtx)
	}
	return r.ratings
}

func (r *repositories) Carts() shared.CartRepository {
	if r.carts == nil {
		r.carts = NewCartRepository(r.q, r.dbtx)
	}
	return r.carts
}

func (r *repositories) Slots() shared.SlotRepository {
	if r.slots == nil {
		r.slots = NewSlotRepository(r.q, r.dbtx)
	}
	return r.slots
}

func (r *repositories) Orders() shared.OrderRepository {
	if r.orders == nil {
		r.orders = NewOrderRepository(r.q, r.dbtx)
	}
	return r.orders
}
