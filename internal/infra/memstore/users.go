package memstore

import (
	"context"

	"click-collect/internal/domain/user"
	"click-collect/internal/infra"

	"github.com/google/uuid"
)

type userRepo struct{ v *view }

func (r userRepo) Create(_ context.Context, u *user.User) (err error) {
	r.v.do(func() {
		if _, ok := r.v.s.users[u.ID()]; ok {
			err = infra.NewRepoErr(infra.KindDuplicateKey, "user already exists", nil)
			return
		}
		if err = r.checkUnique(u); err != nil {
			return
		}
		put(r.v.j, r.v.s.users, u.ID(), *u)
	})
	return err
}

func (r userRepo) Update(_ context.Context, u *user.User) (err error) {
	r.v.do(func() {
		if _, ok := r.v.s.users[u.ID()]; !ok {
			err = infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
			return
		}
		if err = r.checkUnique(u); err != nil {
			return
		}
		put(r.v.j, r.v.s.users, u.ID(), *u)
	})
	return err
}

// checkUnique mirrors the unique indexes on email, username and reset selector.
func (r userRepo) checkUnique(u *user.User) error {
	for id, other := range r.v.s.users {
		if id == u.ID() {
			continue
		}
		if other.Email() == u.Email() || other.Username() == u.Username() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "user email or username taken", nil)
		}
		if u.Reset() != nil && other.Reset() != nil && u.Reset().Selector() == other.Reset().Selector() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "reset selector taken", nil)
		}
	}
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (found *user.User, err error) {
	r.v.do(func() {
		u, ok := r.v.s.users[id]
		if !ok {
			err = infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
			return
		}
		found = &u
	})
	return found, err
}

func (r userRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*user.User, error) {
	users := make([]*user.User, 0, len(ids))
	r.v.do(func() {
		for _, id := range ids {
			if u, ok := r.v.s.users[id]; ok {
				users = append(users, &u)
			}
		}
	})
	return users, nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	return r.findBy(func(u *user.User) bool { return u.Email().Value() == email })
}

func (r userRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	return r.findBy(func(u *user.User) bool { return u.Username().Value() == username })
}

func (r userRepo) FindByResetSelector(_ context.Context, selector string) (*user.User, error) {
	return r.findBy(func(u *user.User) bool {
		return u.Reset() != nil && u.Reset().Selector() == selector
	})
}

func (r userRepo) findBy(match func(u *user.User) bool) (found *user.User, err error) {
	r.v.do(func() {
		for _, u := range r.v.s.users {
			if match(&u) {
				found = &u
				return
			}
		}
		err = infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
	})
	return found, err
}
