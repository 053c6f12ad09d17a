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

type ExpenseRepository struct {
	expenses *mongo.Collection
}

func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{expenses: db.Collection("expenses")}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *model.Expense) error {
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	res, err := r.expenses.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	e.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Expense, error) {
	var e model.Expense
	err := r.expenses.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find expense: %w", err)
	}
	return &e, nil
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID bson.ObjectID, status string) ([]*model.Expense, error) {
	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *ExpenseRepository) ListByCompany(ctx context.Context, companyID bson.ObjectID, status string) ([]*model.Expense, error) {
	filter := bson.M{"company_id": companyID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

// ListByUserMonth returns a user's expenses for a YYYY-MM month.
func (r *ExpenseRepository) ListByUserMonth(ctx context.Context, userID bson.ObjectID, month string) ([]*model.Expense, error) {
	return r.list(ctx, bson.M{"user_id": userID, "date": monthRange(month)})
}

// ListByCompanyMonth returns a company's expenses for a YYYY-MM month.
func (r *ExpenseRepository) ListByCompanyMonth(ctx context.Context, companyID bson.ObjectID, month string) ([]*model.Expense, error) {
	return r.list(ctx, bson.M{"company_id": companyID, "date": monthRange(month)})
}

// ListByUserDate returns a user's expenses for one day.
func (r *ExpenseRepository) ListByUserDate(ctx context.Context, userID bson.ObjectID, date string) ([]*model.Expense, error) {
	return r.list(ctx, bson.M{"user_id": userID, "date": date})
}

func monthRange(month string) bson.M {
	// Dates are stored as YYYY-MM-DD strings, so a prefix range covers the month.
	return bson.M{"$gte": month + "-01", "$lte": month + "-31"}
}

func (r *ExpenseRepository) list(ctx context.Context, filter bson.M) ([]*model.Expense, error) {
	cursor, err := r.expenses.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find expenses: %w", err)
	}
	var out []*model.Expense
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return out, nil
}

// Transition moves an expense between statuses atomically; returns nil when
// the expense was not in fromStatus.
func (r *ExpenseRepository) Transition(ctx context.Context, id bson.ObjectID, fromStatus, toStatus string, decidedBy *bson.ObjectID) (*model.Expense, error) {
	now := time.Now()
	set := bson.M{"status": toStatus, "updated_at": now}
	if decidedBy != nil {
		set["decided_by"] = *decidedBy
		set["decided_at"] = now
	}
	res := r.expenses.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": fromStatus},
		bson.M{"$set": set},
		updateReturnAfter())
	var e model.Expense
	if err := res.Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("transition expense: %w", err)
	}
	return &e, nil
}
