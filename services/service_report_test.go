package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/model"
)

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0.0, CompletionRate(0, 0))
	assert.Equal(t, 0.5, CompletionRate(4, 2))
	assert.Equal(t, 1.0, CompletionRate(3, 3))
	// Never above 1, even with odd inputs.
	assert.Equal(t, 1.0, CompletionRate(2, 5))
}

func TestProductivityScore(t *testing.T) {
	// Perfect day: all targets, on time, plenty of interactions.
	assert.Equal(t, 100.0, ProductivityScore(true, 0, 1, 5))
	// Absent with no activity.
	assert.Equal(t, 0.0, ProductivityScore(false, 0, 0, 0))
	// Punctuality fades with lateness and bottoms out.
	assert.Equal(t, 95.0, ProductivityScore(true, 30, 1, 5))
	assert.Equal(t, 90.0, ProductivityScore(true, 120, 1, 5))
	// Interactions saturate at five per day.
	assert.Equal(t, ProductivityScore(true, 0, 1, 5), ProductivityScore(true, 0, 1, 50))

	for _, score := range []float64{
		ProductivityScore(true, 999, 1, 100),
		ProductivityScore(false, 0, 1, 0),
		ProductivityScore(true, 0, 0, 0),
	} {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

type stubReportStore struct {
	existing *model.DailyReport
	created  *model.DailyReport
}

func (s *stubReportStore) GetByUserDate(context.Context, bson.ObjectID, string) (*model.DailyReport, error) {
	return s.existing, nil
}

func (s *stubReportStore) Create(_ context.Context, rep *model.DailyReport) error {
	rep.ID = bson.NewObjectID()
	s.created = rep
	return nil
}

func (s *stubReportStore) ListByCompanyDate(context.Context, bson.ObjectID, string) ([]*model.DailyReport, error) {
	return nil, nil
}

func (s *stubReportStore) ListByCompanyRange(context.Context, bson.ObjectID, string, string) ([]*model.DailyReport, error) {
	return nil, nil
}

type stubReportUsers struct{ user *model.User }

func (s *stubReportUsers) GetByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, nil
	}
	return s.user, nil
}

type stubReportAttendance struct{ rec *model.AttendanceRecord }

func (s *stubReportAttendance) GetByUserDate(context.Context, bson.ObjectID, string) (*model.AttendanceRecord, error) {
	return s.rec, nil
}

type stubReportTargets struct {
	assigned int64
	visited  int64
}

func (s *stubReportTargets) CountByAgentDate(_ context.Context, _ bson.ObjectID, _ string, statuses []string) (int64, error) {
	if statuses == nil {
		return s.assigned, nil
	}
	return s.visited, nil
}

type stubReportExpenses struct{ expenses []*model.Expense }

func (s *stubReportExpenses) ListByUserDate(context.Context, bson.ObjectID, string) ([]*model.Expense, error) {
	return s.expenses, nil
}

type stubReportInteractions struct{ count int64 }

func (s *stubReportInteractions) CountInteractionsByAgent(context.Context, bson.ObjectID, time.Time, time.Time) (int64, error) {
	return s.count, nil
}

func TestReportDailyGenerates(t *testing.T) {
	companyID := bson.NewObjectID()
	userID := bson.NewObjectID()
	checkIn := time.Date(2025, 6, 2, 9, 10, 0, 0, time.UTC)
	store := &stubReportStore{}
	svc := NewReportService(
		store,
		&stubReportUsers{user: &model.User{ID: userID, CompanyID: companyID}},
		&stubReportAttendance{rec: &model.AttendanceRecord{
			CheckIn:         &model.CheckPayload{Time: checkIn},
			LateMinutes:     10,
			DurationMinutes: 480,
		}},
		&stubReportTargets{assigned: 4, visited: 3},
		&stubReportExpenses{expenses: []*model.Expense{
			{Amount: 100, Status: model.ExpenseApproved},
			{Amount: 40, Status: model.ExpensePending},
			{Amount: 999, Status: model.ExpenseCancelled},
		}},
		&stubReportInteractions{count: 2},
	)

	rep, err := svc.Daily(context.Background(), companyID, userID, "2025-06-02")
	require.NoError(t, err)
	assert.True(t, rep.CheckedIn)
	assert.Equal(t, 10, rep.LateMinutes)
	assert.Equal(t, 4, rep.TargetsAssigned)
	assert.Equal(t, 3, rep.TargetsVisited)
	assert.Equal(t, 0.75, rep.CompletionRate)
	assert.Equal(t, 140.0, rep.ExpenseTotal)
	assert.Equal(t, 2, rep.Interactions)
	assert.NotNil(t, store.created)
}

func TestReportDailyIdempotent(t *testing.T) {
	companyID := bson.NewObjectID()
	userID := bson.NewObjectID()
	existing := &model.DailyReport{ID: bson.NewObjectID(), Date: "2025-06-02", ProductivityScore: 77}
	store := &stubReportStore{existing: existing}
	users := &stubReportUsers{user: &model.User{ID: userID, CompanyID: companyID}}
	svc := NewReportService(store, users, &stubReportAttendance{}, &stubReportTargets{}, &stubReportExpenses{}, &stubReportInteractions{})

	rep, err := svc.Daily(context.Background(), companyID, userID, "2025-06-02")
	require.NoError(t, err)
	assert.Same(t, existing, rep)
	assert.Nil(t, store.created)
}

func TestReportDailyForeignUserRejected(t *testing.T) {
	userID := bson.NewObjectID()
	store := &stubReportStore{}
	users := &stubReportUsers{user: &model.User{ID: userID, CompanyID: bson.NewObjectID()}}
	svc := NewReportService(store, users, &stubReportAttendance{}, &stubReportTargets{}, &stubReportExpenses{}, &stubReportInteractions{})

	// The user belongs to another company: nothing is aggregated or persisted.
	_, err := svc.Daily(context.Background(), bson.NewObjectID(), userID, "2025-06-02")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, store.created)

	// Unknown user ids are rejected the same way.
	_, err = svc.Daily(context.Background(), bson.NewObjectID(), bson.NewObjectID(), "2025-06-02")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, store.created)
}

func TestReportDailyBadDate(t *testing.T) {
	svc := NewReportService(&stubReportStore{}, &stubReportUsers{}, &stubReportAttendance{}, &stubReportTargets{}, &stubReportExpenses{}, &stubReportInteractions{})
	_, err := svc.Daily(context.Background(), bson.NewObjectID(), bson.NewObjectID(), "June 2nd")
	assert.ErrorIs(t, err, ErrValidation)
}
