package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	res, err := r.users.InsertOne(ctx, u)
	if err != nil {
		// The unique username index closes the duplicate-username race.
		return insertErr("insert user", err)
	}
	u.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

// GetByID returns nil when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var u model.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) ListByCompany(ctx context.Context, companyID bson.ObjectID) ([]*model.User, error) {
	cursor, err := r.users.Find(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var out []*model.User
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return out, nil
}

// Update applies a partial $set and returns the updated document, or nil
// when the user does not exist.
func (r *UserRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.User, error) {
	set["updated_at"] = time.Now()
	res := r.users.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		updateReturnAfter())
	var u model.User
	if err := res.Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) CountSuperadmins(ctx context.Context) (int64, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{"role": model.RoleSuperadmin})
	if err != nil {
		return 0, fmt.Errorf("count superadmins: %w", err)
	}
	return n, nil
}
