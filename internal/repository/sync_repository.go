package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type SyncRepository struct {
	actions *mongo.Collection
}

func NewSyncRepository(db *mongo.Database) *SyncRepository {
	return &SyncRepository{actions: db.Collection("sync_actions")}
}

// Seen reports whether an offline action id was already applied.
func (r *SyncRepository) Seen(ctx context.Context, actionID string) (bool, error) {
	err := r.actions.FindOne(ctx, bson.M{"action_id": actionID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find sync action: %w", err)
	}
	return true, nil
}

func (r *SyncRepository) Record(ctx context.Context, a *model.SyncAction) error {
	a.AppliedAt = time.Now()
	_, err := r.actions.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("record sync action: %w", err)
	}
	return nil
}
