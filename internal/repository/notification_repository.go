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

type NotificationRepository struct {
	notifications *mongo.Collection
	prefs         *mongo.Collection
	tokens        *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{
		notifications: db.Collection("notifications"),
		prefs:         db.Collection("notification_prefs"),
		tokens:        db.Collection("device_tokens"),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	res, err := r.notifications.InsertOne(ctx, n)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	n.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Notification, error) {
	var n model.Notification
	err := r.notifications.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find notification: %w", err)
	}
	return &n, nil
}

// ListByUser returns a user's notifications newest first. Deleted ones are
// excluded unless asked for explicitly via status.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID bson.ObjectID, status string, limit int64) ([]*model.Notification, error) {
	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	} else {
		filter["status"] = bson.M{"$ne": model.NotificationDeleted}
	}
	cursor, err := r.notifications.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find notifications: %w", err)
	}
	var out []*model.Notification
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return out, nil
}

// SetStatus updates one notification owned by userID; returns false when no
// document matched.
func (r *NotificationRepository) SetStatus(ctx context.Context, id, userID bson.ObjectID, status string) (bool, error) {
	res, err := r.notifications.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}})
	if err != nil {
		return false, fmt.Errorf("update notification: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID bson.ObjectID) (int64, error) {
	res, err := r.notifications.UpdateMany(ctx,
		bson.M{"user_id": userID, "status": model.NotificationUnread},
		bson.M{"$set": bson.M{"status": model.NotificationRead, "updated_at": time.Now()}})
	if err != nil {
		return 0, fmt.Errorf("mark notifications read: %w", err)
	}
	return res.ModifiedCount, nil
}

// SetPushMeta records the FCM message id after dispatch.
func (r *NotificationRepository) SetPushMeta(ctx context.Context, id bson.ObjectID, messageID string) error {
	now := time.Now()
	_, err := r.notifications.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"push_message_id": messageID, "pushed_at": now, "updated_at": now}})
	if err != nil {
		return fmt.Errorf("set push meta: %w", err)
	}
	return nil
}

// --- preferences ---

func (r *NotificationRepository) GetPrefs(ctx context.Context, userID bson.ObjectID) (*model.NotificationPrefs, error) {
	var p model.NotificationPrefs
	err := r.prefs.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find notification prefs: %w", err)
	}
	return &p, nil
}

func (r *NotificationRepository) UpsertPrefs(ctx context.Context, p *model.NotificationPrefs) error {
	p.UpdatedAt = time.Now()
	_, err := r.prefs.UpdateOne(ctx,
		bson.M{"user_id": p.UserID},
		bson.M{"$set": bson.M{
			"push_enabled": p.PushEnabled,
			"types":        p.Types,
			"updated_at":   p.UpdatedAt,
		}},
		options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert notification prefs: %w", err)
	}
	return nil
}

// --- device tokens ---

func (r *NotificationRepository) UpsertToken(ctx context.Context, t *model.DeviceToken) error {
	_, err := r.tokens.UpdateOne(ctx,
		bson.M{"token": t.Token},
		bson.M{
			"$set":         bson.M{"user_id": t.UserID, "platform": t.Platform},
			"$setOnInsert": bson.M{"created_at": time.Now()},
		},
		options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert device token: %w", err)
	}
	return nil
}

func (r *NotificationRepository) TokensForUser(ctx context.Context, userID bson.ObjectID) ([]string, error) {
	cursor, err := r.tokens.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find device tokens: %w", err)
	}
	var docs []*model.DeviceToken
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode device tokens: %w", err)
	}
	tokens := make([]string, 0, len(docs))
	for _, d := range docs {
		tokens = append(tokens, d.Token)
	}
	return tokens, nil
}
