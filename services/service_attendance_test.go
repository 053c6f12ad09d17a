package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

func TestLateMinutes(t *testing.T) {
	day := func(hh, mm int) time.Time {
		return time.Date(2025, 6, 2, hh, mm, 0, 0, time.UTC)
	}
	assert.Equal(t, 0, LateMinutes("09:00", day(8, 45)))
	assert.Equal(t, 0, LateMinutes("09:00", day(9, 0)))
	assert.Equal(t, 25, LateMinutes("09:00", day(9, 25)))
	assert.Equal(t, 90, LateMinutes("08:30", day(10, 0)))
	// Unparseable work start never counts as late.
	assert.Equal(t, 0, LateMinutes("morning", day(11, 0)))
}

type stubAttendanceStore struct {
	records map[string]*model.AttendanceRecord
}

func (s *stubAttendanceStore) key(userID bson.ObjectID, date string) string {
	return userID.Hex() + "/" + date
}

func (s *stubAttendanceStore) GetByUserDate(_ context.Context, userID bson.ObjectID, date string) (*model.AttendanceRecord, error) {
	return s.records[s.key(userID, date)], nil
}

func (s *stubAttendanceStore) Create(_ context.Context, rec *model.AttendanceRecord) error {
	if s.records == nil {
		s.records = map[string]*model.AttendanceRecord{}
	}
	rec.ID = bson.NewObjectID()
	s.records[s.key(rec.UserID, rec.Date)] = rec
	return nil
}

func (s *stubAttendanceStore) Update(_ context.Context, rec *model.AttendanceRecord) error {
	s.records[s.key(rec.UserID, rec.Date)] = rec
	return nil
}

func (s *stubAttendanceStore) ListByUserRange(context.Context, bson.ObjectID, string, string) ([]*model.AttendanceRecord, error) {
	return nil, nil
}

func (s *stubAttendanceStore) ListByCompanyDate(context.Context, bson.ObjectID, string) ([]*model.AttendanceRecord, error) {
	return nil, nil
}

type stubAttendanceCompany struct{ company *model.Company }

func (s *stubAttendanceCompany) GetByID(context.Context, bson.ObjectID) (*model.Company, error) {
	return s.company, nil
}

func TestAttendanceCheckInAndOut(t *testing.T) {
	companyID := bson.NewObjectID()
	userID := bson.NewObjectID()
	loc := &model.GeoPoint{Lat: 13.75, Lng: 100.5}

	store := &stubAttendanceStore{}
	svc := NewAttendanceService(store, &stubAttendanceCompany{
		company: &model.Company{WorkStart: "09:00"},
	})
	now := time.Date(2025, 6, 2, 9, 40, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	rec, err := svc.CheckIn(context.Background(), companyID, userID, dto.CheckInReq{Location: loc})
	require.NoError(t, err)
	assert.Equal(t, 40, rec.LateMinutes)
	assert.Equal(t, "2025-06-02", rec.Date)

	_, err = svc.CheckIn(context.Background(), companyID, userID, dto.CheckInReq{Location: loc})
	assert.ErrorIs(t, err, ErrDuplicate)

	now = now.Add(8 * time.Hour)
	rec, err = svc.CheckOut(context.Background(), userID, dto.CheckOutReq{Location: loc})
	require.NoError(t, err)
	assert.Equal(t, 480, rec.DurationMinutes)

	_, err = svc.CheckOut(context.Background(), userID, dto.CheckOutReq{})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAttendanceCheckInRequiresLocation(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceStore{}, &stubAttendanceCompany{})
	_, err := svc.CheckIn(context.Background(), bson.NewObjectID(), bson.NewObjectID(), dto.CheckInReq{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAttendanceCheckOutWithoutCheckIn(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceStore{}, &stubAttendanceCompany{})
	_, err := svc.CheckOut(context.Background(), bson.NewObjectID(), dto.CheckOutReq{})
	assert.ErrorIs(t, err, ErrNotFound)
}
