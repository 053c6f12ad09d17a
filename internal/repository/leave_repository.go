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

type LeaveRepository struct {
	requests *mongo.Collection
	balances *mongo.Collection
}

func NewLeaveRepository(db *mongo.Database) *LeaveRepository {
	return &LeaveRepository{
		requests: db.Collection("leave_requests"),
		balances: db.Collection("leave_balances"),
	}
}

func (r *LeaveRepository) Create(ctx context.Context, req *model.LeaveRequest) error {
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	res, err := r.requests.InsertOne(ctx, req)
	if err != nil {
		return fmt.Errorf("insert leave request: %w", err)
	}
	req.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *LeaveRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.LeaveRequest, error) {
	var req model.LeaveRequest
	err := r.requests.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find leave request: %w", err)
	}
	return &req, nil
}

func (r *LeaveRepository) ListByUser(ctx context.Context, userID bson.ObjectID, status string) ([]*model.LeaveRequest, error) {
	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *LeaveRepository) ListByCompany(ctx context.Context, companyID bson.ObjectID, status string) ([]*model.LeaveRequest, error) {
	filter := bson.M{"company_id": companyID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *LeaveRepository) list(ctx context.Context, filter bson.M) ([]*model.LeaveRequest, error) {
	cursor, err := r.requests.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find leave requests: %w", err)
	}
	var out []*model.LeaveRequest
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode leave requests: %w", err)
	}
	return out, nil
}

// Transition moves a request from one status to another atomically; returns
// the updated request or nil when the request was not in fromStatus.
func (r *LeaveRepository) Transition(ctx context.Context, id bson.ObjectID, fromStatus, toStatus string, decidedBy *bson.ObjectID) (*model.LeaveRequest, error) {
	now := time.Now()
	set := bson.M{"status": toStatus, "updated_at": now}
	if decidedBy != nil {
		set["decided_by"] = *decidedBy
		set["decided_at"] = now
	}
	res := r.requests.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": fromStatus},
		bson.M{"$set": set},
		updateReturnAfter())
	var req model.LeaveRequest
	if err := res.Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("transition leave request: %w", err)
	}
	return &req, nil
}

// --- balances ---

func (r *LeaveRepository) GetBalance(ctx context.Context, userID bson.ObjectID) (*model.LeaveBalance, error) {
	var b model.LeaveBalance
	err := r.balances.FindOne(ctx, bson.M{"user_id": userID}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find leave balance: %w", err)
	}
	return &b, nil
}

// EnsureBalance creates the balance document for a new user if absent.
func (r *LeaveRepository) EnsureBalance(ctx context.Context, companyID, userID bson.ObjectID, defaults map[string]float64) error {
	_, err := r.balances.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$setOnInsert": bson.M{
				"company_id": companyID,
				"balances":   defaults,
				"updated_at": time.Now(),
			},
		},
		options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("ensure leave balance: %w", err)
	}
	return nil
}

// AdjustBalance changes one leave type's remaining days by delta (negative
// to reserve, positive to restore).
func (r *LeaveRepository) AdjustBalance(ctx context.Context, userID bson.ObjectID, leaveType string, delta float64) error {
	_, err := r.balances.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$inc": bson.M{"balances." + leaveType: delta},
			"$set": bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		return fmt.Errorf("adjust leave balance: %w", err)
	}
	return nil
}
