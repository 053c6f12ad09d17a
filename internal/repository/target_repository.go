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

type TargetRepository struct {
	targets *mongo.Collection
	visits  *mongo.Collection
}

func NewTargetRepository(db *mongo.Database) *TargetRepository {
	return &TargetRepository{
		targets: db.Collection("targets"),
		visits:  db.Collection("visits"),
	}
}

func (r *TargetRepository) Create(ctx context.Context, t *model.Target) error {
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	res, err := r.targets.InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("insert target: %w", err)
	}
	t.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *TargetRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Target, error) {
	var t model.Target
	err := r.targets.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find target: %w", err)
	}
	return &t, nil
}

// ListByAgent is scoped by company so one tenant's admin cannot list
// another tenant's targets by guessing agent ids.
func (r *TargetRepository) ListByAgent(ctx context.Context, companyID, agentID bson.ObjectID, date, status string) ([]*model.Target, error) {
	filter := bson.M{"company_id": companyID, "agent_id": agentID}
	if date != "" {
		filter["planned_date"] = date
	}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.targets.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "planned_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find targets: %w", err)
	}
	var out []*model.Target
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode targets: %w", err)
	}
	return out, nil
}

func (r *TargetRepository) SetStatus(ctx context.Context, id bson.ObjectID, status string) (*model.Target, error) {
	res := r.targets.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
		updateReturnAfter())
	var t model.Target
	if err := res.Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("update target: %w", err)
	}
	return &t, nil
}

func (r *TargetRepository) CountByAgentDate(ctx context.Context, agentID bson.ObjectID, date string, statuses []string) (int64, error) {
	filter := bson.M{"agent_id": agentID, "planned_date": date}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	n, err := r.targets.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count targets: %w", err)
	}
	return n, nil
}

// --- visits ---

func (r *TargetRepository) CreateVisit(ctx context.Context, v *model.Visit) error {
	v.VisitedAt = time.Now()
	res, err := r.visits.InsertOne(ctx, v)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	v.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *TargetRepository) ListVisitsByTarget(ctx context.Context, targetID bson.ObjectID) ([]*model.Visit, error) {
	cursor, err := r.visits.Find(ctx, bson.M{"target_id": targetID},
		options.Find().SetSort(bson.D{{Key: "visited_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find visits: %w", err)
	}
	var out []*model.Visit
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode visits: %w", err)
	}
	return out, nil
}
