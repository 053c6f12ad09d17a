package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type ReportStore interface {
	GetByUserDate(ctx context.Context, userID bson.ObjectID, date string) (*model.DailyReport, error)
	Create(ctx context.Context, rep *model.DailyReport) error
	ListByCompanyDate(ctx context.Context, companyID bson.ObjectID, date string) ([]*model.DailyReport, error)
	ListByCompanyRange(ctx context.Context, companyID bson.ObjectID, from, to string) ([]*model.DailyReport, error)
}

type ReportUserStore interface {
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
}

type ReportAttendanceStore interface {
	GetByUserDate(ctx context.Context, userID bson.ObjectID, date string) (*model.AttendanceRecord, error)
}

type ReportTargetStore interface {
	CountByAgentDate(ctx context.Context, agentID bson.ObjectID, date string, statuses []string) (int64, error)
}

type ReportExpenseStore interface {
	ListByUserDate(ctx context.Context, userID bson.ObjectID, date string) ([]*model.Expense, error)
}

type ReportInteractionStore interface {
	CountInteractionsByAgent(ctx context.Context, agentID bson.ObjectID, from, to time.Time) (int64, error)
}

type ReportService struct {
	reports      ReportStore
	users        ReportUserStore
	attendance   ReportAttendanceStore
	targets      ReportTargetStore
	expenses     ReportExpenseStore
	interactions ReportInteractionStore
}

func NewReportService(reports ReportStore, users ReportUserStore, attendance ReportAttendanceStore, targets ReportTargetStore, expenses ReportExpenseStore, interactions ReportInteractionStore) *ReportService {
	return &ReportService{
		reports:      reports,
		users:        users,
		attendance:   attendance,
		targets:      targets,
		expenses:     expenses,
		interactions: interactions,
	}
}

// CompletionRate is visited/assigned clamped to [0,1]; zero when nothing
// was assigned.
func CompletionRate(assigned, visited int) float64 {
	if assigned <= 0 {
		return 0
	}
	rate := float64(visited) / float64(assigned)
	return math.Min(rate, 1)
}

// ProductivityScore folds the day into [0,100]:
// 40% target completion, 30% attendance, 20% interaction activity
// (saturating at 5/day), 10% punctuality (fades to 0 at 60 min late).
func ProductivityScore(checkedIn bool, lateMinutes int, completionRate float64, interactions int) float64 {
	score := 40 * completionRate

	if checkedIn {
		score += 30
		punctuality := 1 - float64(lateMinutes)/60
		if punctuality < 0 {
			punctuality = 0
		}
		score += 10 * punctuality
	}

	activity := float64(interactions) / 5
	if activity > 1 {
		activity = 1
	}
	score += 20 * activity

	return math.Round(score*100) / 100
}

// Daily returns the stored report for the user/date, generating and
// persisting it on first request.
func (s *ReportService) Daily(ctx context.Context, companyID, userID bson.ObjectID, date string) (*model.DailyReport, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date", ErrValidation)
	}

	// Users of other companies are invisible; without this an admin could
	// aggregate (and persist) a foreign user's day under their own company.
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.CompanyID != companyID {
		return nil, ErrNotFound
	}

	if existing, err := s.reports.GetByUserDate(ctx, userID, date); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	rep := &model.DailyReport{CompanyID: companyID, UserID: userID, Date: date}

	att, err := s.attendance.GetByUserDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if att != nil && att.CheckIn != nil {
		rep.CheckedIn = true
		rep.LateMinutes = att.LateMinutes
		rep.WorkedMinutes = att.DurationMinutes
	}

	assigned, err := s.targets.CountByAgentDate(ctx, userID, date, nil)
	if err != nil {
		return nil, err
	}
	visited, err := s.targets.CountByAgentDate(ctx, userID, date,
		[]string{model.TargetVisited, model.TargetConverted})
	if err != nil {
		return nil, err
	}
	rep.TargetsAssigned = int(assigned)
	rep.TargetsVisited = int(visited)

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)
	interactions, err := s.interactions.CountInteractionsByAgent(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	rep.Interactions = int(interactions)

	expenses, err := s.expenses.ListByUserDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, e := range expenses {
		if e.Status == model.ExpenseCancelled || e.Status == model.ExpenseRejected {
			continue
		}
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	rep.ExpenseTotal = total.InexactFloat64()

	rep.CompletionRate = CompletionRate(rep.TargetsAssigned, rep.TargetsVisited)
	rep.ProductivityScore = ProductivityScore(rep.CheckedIn, rep.LateMinutes, rep.CompletionRate, rep.Interactions)

	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// CompanyDaily is the admin roll-up of already-generated reports.
func (s *ReportService) CompanyDaily(ctx context.Context, companyID bson.ObjectID, date string) ([]*model.DailyReport, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: bad date", ErrValidation)
	}
	return s.reports.ListByCompanyDate(ctx, companyID, date)
}

// ExportRangeXLSX renders a company's reports over a date range.
func (s *ReportService) ExportRangeXLSX(ctx context.Context, companyID bson.ObjectID, from, to string) ([]byte, error) {
	if _, err := time.Parse(dateLayout, from); err != nil {
		return nil, fmt.Errorf("%w: bad from date", ErrValidation)
	}
	if _, err := time.Parse(dateLayout, to); err != nil {
		return nil, fmt.Errorf("%w: bad to date", ErrValidation)
	}
	reports, err := s.reports.ListByCompanyRange(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Daily Reports"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "User", "Checked In", "Late (min)", "Worked (min)",
		"Targets", "Visited", "Interactions", "Expenses", "Completion", "Score"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, r := range reports {
		values := []any{r.Date, r.UserID.Hex(), r.CheckedIn, r.LateMinutes, r.WorkedMinutes,
			r.TargetsAssigned, r.TargetsVisited, r.Interactions, r.ExpenseTotal,
			r.CompletionRate, r.ProductivityScore}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
