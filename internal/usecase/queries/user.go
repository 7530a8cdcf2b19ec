package queries

import (
	"context"

	"github.com/google/uuid"

	"click-collect/internal/infra"
	"click-collect/internal/pkg/errs"
	"click-collect/internal/usecase/shared"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock

var ErrUserNotFound = errs.Class("user not found", errs.ErrNotFound)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{
		uow: uow,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.uow.Reads().Users().FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserView(u), nil
}
