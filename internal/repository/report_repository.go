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

type ReportRepository struct {
	reports *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{reports: db.Collection("daily_reports")}
}

func (r *ReportRepository) GetByUserDate(ctx context.Context, userID bson.ObjectID, date string) (*model.DailyReport, error) {
	var rep model.DailyReport
	err := r.reports.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&rep)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find daily report: %w", err)
	}
	return &rep, nil
}

func (r *ReportRepository) Create(ctx context.Context, rep *model.DailyReport) error {
	rep.GeneratedAt = time.Now()
	res, err := r.reports.InsertOne(ctx, rep)
	if err != nil {
		return fmt.Errorf("insert daily report: %w", err)
	}
	rep.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *ReportRepository) ListByCompanyDate(ctx context.Context, companyID bson.ObjectID, date string) ([]*model.DailyReport, error) {
	return r.list(ctx, bson.M{"company_id": companyID, "date": date})
}

func (r *ReportRepository) ListByCompanyRange(ctx context.Context, companyID bson.ObjectID, from, to string) ([]*model.DailyReport, error) {
	return r.list(ctx, bson.M{"company_id": companyID, "date": bson.M{"$gte": from, "$lte": to}})
}

func (r *ReportRepository) list(ctx context.Context, filter bson.M) ([]*model.DailyReport, error) {
	cursor, err := r.reports.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find daily reports: %w", err)
	}
	var out []*model.DailyReport
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode daily reports: %w", err)
	}
	return out, nil
}
