package memstore

import (
	"context"
	"sort"

	"click-collect/internal/domain/favorite"
	"click-collect/internal/domain/rating"
	"click-collect/internal/infra"

	"github.com/google/uuid"
)

type favoriteRepo struct{ v *view }

func (r favoriteRepo) Add(_ context.Context, f *favorite.Favorite) (err error) {
	r.v.do(func() {
		if _, ok := r.v.s.products[f.ProductID()]; !ok {
			err = infra.NewRepoErr(infra.KindForeignKeyViolated, "product does not exist", nil)
			return
		}
		for _, other := range r.v.s.favorites {
			if other.UserID() == f.UserID() && other.ProductID() == f.ProductID() {
				err = infra.NewRepoErr(infra.KindDuplicateKey, "favorite already exists", nil)
				return
			}
		}
		put(r.v.j, r.v.s.favorites, f.ID(), *f)
	})
	return err
}

func (r favoriteRepo) Remove(_ context.Context, userID, productID uuid.UUID) error {
	r.v.do(func() {
		for id, f := range r.v.s.favorites {
			if f.UserID() == userID && f.ProductID() == productID {
				remove(r.v.j, r.v.s.favorites, id)
			}
		}
	})
	return nil
}

func (r favoriteRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*favorite.Favorite, error) {
	favorites := []*favorite.Favorite{}
	r.v.do(func() {
		for _, f := range r.v.s.favorites {
			if f.UserID() == userID {
				favorites = append(favorites, &f)
			}
		}
	})
	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].CreatedAt().After(favorites[j].CreatedAt())
	})
	return favorites, nil
}

type ratingRepo struct{ v *view }

func (r ratingRepo) Create(_ context.Context, rt *rating.Rating) (err error) {
	r.v.do(func() {
		if _, ok := r.v.s.products[rt.ProductID()]; !ok {
			err = infra.NewRepoErr(infra.KindForeignKeyViolated, "product does not exist", nil)
			return
		}
		put(r.v.j, r.v.s.ratings, rt.ID(), *rt)
	})
	return err
}

func (r ratingRepo) ListByProduct(_ context.Context, productID uuid.UUID, limit, offset int) ([]*rating.Rating, int, error) {
	var all []*rating.Rating
	r.v.do(func() {
		for _, rt := range r.v.s.ratings {
			if rt.ProductID() == productID {
				all = append(all, &rt)
			}
		}
	})
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt().Equal(all[j].CreatedAt()) {
			return all[i].CreatedAt().After(all[j].CreatedAt())
		}
		return all[i].ID().String() < all[j].ID().String()
	})
	return paginate(all, limit, offset), len(all), nil
}

func (r ratingRepo) Summarize(_ context.Context, productID uuid.UUID) (rating.Summary, error) {
	var scores []int
	r.v.do(func() {
		for _, rt := range r.v.s.ratings {
			if rt.ProductID() == productID {
				scores = append(scores, rt.Score())
			}
		}
	})
	return rating.Summarize(scores), nil
}
