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

type AttendanceRepository struct {
	attendance *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{attendance: db.Collection("attendance")}
}

// GetByUserDate returns the day's record for a user, or nil if not found.
func (r *AttendanceRepository) GetByUserDate(ctx context.Context, userID bson.ObjectID, date string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := r.attendance.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	return &rec, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, rec *model.AttendanceRecord) error {
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	res, err := r.attendance.InsertOne(ctx, rec)
	if err != nil {
		// The unique user_id+date index closes the double-check-in race.
		return insertErr("insert attendance", err)
	}
	rec.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *AttendanceRepository) Update(ctx context.Context, rec *model.AttendanceRecord) error {
	rec.UpdatedAt = time.Now()
	if _, err := r.attendance.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec); err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) ListByUserRange(ctx context.Context, userID bson.ObjectID, from, to string) ([]*model.AttendanceRecord, error) {
	cursor, err := r.attendance.Find(ctx,
		bson.M{"user_id": userID, "date": bson.M{"$gte": from, "$lte": to}},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	var out []*model.AttendanceRecord
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	return out, nil
}

func (r *AttendanceRepository) ListByCompanyDate(ctx context.Context, companyID bson.ObjectID, date string) ([]*model.AttendanceRecord, error) {
	cursor, err := r.attendance.Find(ctx, bson.M{"company_id": companyID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	var out []*model.AttendanceRecord
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	return out, nil
}
