package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. Safe to run on
// every boot; Mongo treats existing definitions as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "role", Value: 1}}},
		},
		"attendance": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "date", Value: 1}}},
		},
		"leave_requests": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "status", Value: 1}}},
		},
		"leave_balances": {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"expenses": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "status", Value: 1}}},
		},
		"customers": {
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "agent_id", Value: 1}}},
		},
		"targets": {
			{Keys: bson.D{{Key: "agent_id", Value: 1}, {Key: "planned_date", Value: 1}}},
			{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "status", Value: 1}}},
		},
		"notifications": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"device_tokens": {
			{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		"daily_reports": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"sync_actions": {
			{Keys: bson.D{{Key: "action_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}
