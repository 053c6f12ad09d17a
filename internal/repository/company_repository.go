package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type CompanyRepository struct {
	companies *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{companies: db.Collection("companies")}
}

func (r *CompanyRepository) Create(ctx context.Context, c *model.Company) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	res, err := r.companies.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	c.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Company, error) {
	var c model.Company
	err := r.companies.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find company: %w", err)
	}
	return &c, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*model.Company, error) {
	cursor, err := r.companies.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find companies: %w", err)
	}
	var out []*model.Company
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}
	return out, nil
}

func (r *CompanyRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Company, error) {
	set["updated_at"] = time.Now()
	res := r.companies.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		updateReturnAfter())
	var c model.Company
	if err := res.Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &c, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.companies.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete company: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// IncCount bumps admin_count or agent_count by delta.
func (r *CompanyRepository) IncCount(ctx context.Context, id bson.ObjectID, role string, delta int) error {
	field := "agent_count"
	if role == model.RoleAdmin {
		field = "admin_count"
	}
	_, err := r.companies.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{field: delta},
			"$set": bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		return fmt.Errorf("update company counts: %w", err)
	}
	return nil
}
