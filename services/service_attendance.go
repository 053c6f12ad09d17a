package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type AttendanceStore interface {
	GetByUserDate(ctx context.Context, userID bson.ObjectID, date string) (*model.AttendanceRecord, error)
	Create(ctx context.Context, rec *model.AttendanceRecord) error
	Update(ctx context.Context, rec *model.AttendanceRecord) error
	ListByUserRange(ctx context.Context, userID bson.ObjectID, from, to string) ([]*model.AttendanceRecord, error)
	ListByCompanyDate(ctx context.Context, companyID bson.ObjectID, date string) ([]*model.AttendanceRecord, error)
}

type AttendanceCompanyStore interface {
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Company, error)
}

type AttendanceService struct {
	attendance AttendanceStore
	companies  AttendanceCompanyStore
	now        func() time.Time
}

func NewAttendanceService(attendance AttendanceStore, companies AttendanceCompanyStore) *AttendanceService {
	return &AttendanceService{attendance: attendance, companies: companies, now: time.Now}
}

// LateMinutes compares a check-in time against the company work start
// ("15:04" on the same day). On-time or earlier is zero.
func LateMinutes(workStart string, checkIn time.Time) int {
	start, err := time.Parse("15:04", workStart)
	if err != nil {
		return 0
	}
	dayStart := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(),
		start.Hour(), start.Minute(), 0, 0, checkIn.Location())
	if !checkIn.After(dayStart) {
		return 0
	}
	return int(checkIn.Sub(dayStart).Minutes())
}

func (s *AttendanceService) CheckIn(ctx context.Context, companyID, userID bson.ObjectID, req dto.CheckInReq) (*model.AttendanceRecord, error) {
	if req.Location == nil {
		return nil, fmt.Errorf("%w: location required", ErrValidation)
	}

	now := s.now()
	date := now.Format(dateLayout)

	if existing, err := s.attendance.GetByUserDate(ctx, userID, date); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: already checked in today", ErrDuplicate)
	}

	workStart := "09:00"
	if company, err := s.companies.GetByID(ctx, companyID); err != nil {
		return nil, err
	} else if company != nil && company.WorkStart != "" {
		workStart = company.WorkStart
	}

	rec := &model.AttendanceRecord{
		CompanyID: companyID,
		UserID:    userID,
		Date:      date,
		CheckIn: &model.CheckPayload{
			Time:      now,
			Location:  req.Location,
			SelfieURL: req.SelfieURL,
		},
		LateMinutes: LateMinutes(workStart, now),
	}
	if err := s.attendance.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *AttendanceService) CheckOut(ctx context.Context, userID bson.ObjectID, req dto.CheckOutReq) (*model.AttendanceRecord, error) {
	now := s.now()
	date := now.Format(dateLayout)

	rec, err := s.attendance.GetByUserDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.CheckIn == nil {
		return nil, fmt.Errorf("%w: no check-in today", ErrNotFound)
	}
	if rec.CheckOut != nil {
		return nil, fmt.Errorf("%w: already checked out", ErrDuplicate)
	}

	rec.CheckOut = &model.CheckPayload{Time: now, Location: req.Location}
	rec.DurationMinutes = int(now.Sub(rec.CheckIn.Time).Minutes())
	if err := s.attendance.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *AttendanceService) ListByUserRange(ctx context.Context, userID bson.ObjectID, from, to string) ([]*model.AttendanceRecord, error) {
	if _, err := time.Parse(dateLayout, from); err != nil {
		return nil, fmt.Errorf("%w: bad from date", ErrValidation)
	}
	if _, err := time.Parse(dateLayout, to); err != nil {
		return nil, fmt.Errorf("%w: bad to date", ErrValidation)
	}
	return s.attendance.ListByUserRange(ctx, userID, from, to)
}

func (s *AttendanceService) ListByCompanyDate(ctx context.Context, companyID bson.ObjectID, date string) ([]*model.AttendanceRecord, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: bad date", ErrValidation)
	}
	return s.attendance.ListByCompanyDate(ctx, companyID, date)
}
