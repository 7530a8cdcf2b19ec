package postgres

import (
	"context"

	"click-collect/internal/domain/user"
	"click-collect/internal/infra"
	sqlc "click-collect/internal/infra/sqlc/generated"
	"click-collect/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error)
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetUsersByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Users, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
	GetUserByResetSelector(ctx context.Context, db sqlc.DBTX, resetSelector pgtype.Text) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	reset := secretColumns(u.Reset())
	twoFactor := secretColumns(u.TwoFactor())
	err := r.queries.CreateUser(ctx, r.db, sqlc.CreateUserParams{
		ID:                 u.ID(),
		Username:           u.Username().Value(),
		Email:              u.Email().Value(),
		Phone:              pgconv.StringPtrToPgtype(u.Phone()),
		PasswordHash:       u.PasswordHash(),
		ResetSelector:      reset.selector,
		ResetDigest:        reset.digest,
		ResetExpiresAt:     reset.expiresAt,
		TwoFactorDigest:    twoFactor.digest,
		TwoFactorExpiresAt: twoFactor.expiresAt,
		CreatedAt:          pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	reset := secretColumns(u.Reset())
	twoFactor := secretColumns(u.TwoFactor())
	n, err := r.queries.UpdateUser(ctx, r.db, sqlc.UpdateUserParams{
		ID:                 u.ID(),
		Username:           u.Username().Value(),
		Email:              u.Email().Value(),
		Phone:              pgconv.StringPtrToPgtype(u.Phone()),
		PasswordHash:       u.PasswordHash(),
		ResetSelector:      reset.selector,
		ResetDigest:        reset.digest,
		ResetExpiresAt:     reset.expiresAt,
		TwoFactorDigest:    twoFactor.digest,
		TwoFactorExpiresAt: twoFactor.expiresAt,
		UpdatedAt:          pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUser(row), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}
	rows, err := r.queries.GetUsersByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users by IDs", err)
	}
	users := make([]*user.User, len(rows))
	for i, row := range rows {
		users[i] = toUser(row)
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUser(row), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	row, err := r.queries.GetUserByUsername(ctx, r.db, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return toUser(row), nil
}

func (r *UserRepository) FindByResetSelector(ctx context.Context, selector string) (*user.User, error) {
	row, err := r.queries.GetUserByResetSelector(ctx, r.db, pgtype.Text{String: selector, Valid: true})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by reset selector", err)
	}
	return toUser(row), nil
}

type secretCols struct {
	selector  pgtype.Text
	digest    pgtype.Text
	expiresAt pgtype.Timestamptz
}

func secretColumns(s *user.OneTimeSecret) secretCols {
	if s == nil {
		return secretCols{}
	}
	cols := secretCols{
		digest:    pgtype.Text{String: s.Encoded(), Valid: true},
		expiresAt: pgconv.TimeToPgtype(s.ExpiresAt()),
	}
	if s.Selector() != "" {
		cols.selector = pgtype.Text{String: s.Selector(), Valid: true}
	}
	return cols
}

func toUser(row sqlc.Users) *user.User {
	var reset, twoFactor *user.OneTimeSecret
	if row.ResetDigest.Valid && row.ResetExpiresAt.Valid {
		reset = user.ReconstructSecret(row.ResetSelector.String, row.ResetDigest.String, row.ResetExpiresAt.Time)
	}
	if row.TwoFactorDigest.Valid && row.TwoFactorExpiresAt.Valid {
		twoFactor = user.ReconstructSecret("", row.TwoFactorDigest.String, row.TwoFactorExpiresAt.Time)
	}
	return user.ReconstructUser(
		row.ID,
		row.Username,
		row.Email,
		pgconv.StringPtrFromPgtype(row.Phone),
		row.PasswordHash,
		reset,
		twoFactor,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
