package mongostore

import (
	"context"

	"click-collect/internal/domain/user"
	"click-collect/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	col *mongo.Collection
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.col.InsertOne(ctx, fromUser(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

// Update replaces the whole document so cleared secrets disappear.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID().String()}, fromUser(u))
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if res.MatchedCount == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users by IDs", err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode users", err)
	}
	users := make([]*user.User, 0, len(docs))
	for _, d := range docs {
		u, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert user document", err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByResetSelector(ctx context.Context, selector string) (*user.User, error) {
	return r.findOne(ctx, bson.M{"resetSelector": selector})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*user.User, error) {
	var d userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	u, err := d.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user document", err)
	}
	return u, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
