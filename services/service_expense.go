package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type ExpenseStore interface {
	Create(ctx context.Context, e *model.Expense) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Expense, error)
	ListByUser(ctx context.Context, userID bson.ObjectID, status string) ([]*model.Expense, error)
	ListByCompany(ctx context.Context, companyID bson.ObjectID, status string) ([]*model.Expense, error)
	ListByUserMonth(ctx context.Context, userID bson.ObjectID, month string) ([]*model.Expense, error)
	ListByCompanyMonth(ctx context.Context, companyID bson.ObjectID, month string) ([]*model.Expense, error)
	Transition(ctx context.Context, id bson.ObjectID, fromStatus, toStatus string, decidedBy *bson.ObjectID) (*model.Expense, error)
}

// expenseTransitions maps a requested status to the status it must come from.
var expenseTransitions = map[string]string{
	model.ExpenseApproved:   model.ExpensePending,
	model.ExpenseRejected:   model.ExpensePending,
	model.ExpenseReimbursed: model.ExpenseApproved,
}

type ExpenseService struct {
	expenses ExpenseStore
	notifier Notifier
}

func NewExpenseService(expenses ExpenseStore, notifier Notifier) *ExpenseService {
	return &ExpenseService{expenses: expenses, notifier: notifier}
}

// ValidateExpense is the admission rule applied before anything is stored.
func ValidateExpense(req dto.CreateExpenseReq) error {
	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !model.ValidExpenseCategory(req.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return fmt.Errorf("%w: bad date", ErrValidation)
	}
	return nil
}

func (s *ExpenseService) Create(ctx context.Context, companyID, userID bson.ObjectID, req dto.CreateExpenseReq) (*model.Expense, error) {
	if err := ValidateExpense(req); err != nil {
		return nil, err
	}
	e := &model.Expense{
		CompanyID:   companyID,
		UserID:      userID,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		ReceiptURL:  req.ReceiptURL,
		Status:      model.ExpensePending,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) ListByUser(ctx context.Context, userID bson.ObjectID, status string) ([]*model.Expense, error) {
	return s.expenses.ListByUser(ctx, userID, status)
}

func (s *ExpenseService) ListByCompany(ctx context.Context, companyID bson.ObjectID, status string) ([]*model.Expense, error) {
	return s.expenses.ListByCompany(ctx, companyID, status)
}

// Decide applies an admin transition (approve/reject/reimburse).
func (s *ExpenseService) Decide(ctx context.Context, id, adminID, companyID bson.ObjectID, toStatus string) (*model.Expense, error) {
	fromStatus, ok := expenseTransitions[toStatus]
	if !ok {
		return nil, fmt.Errorf("%w: cannot set status %q", ErrValidation, toStatus)
	}
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	if e.CompanyID != companyID {
		return nil, ErrForbidden
	}

	updated, err := s.expenses.Transition(ctx, id, fromStatus, toStatus, &adminID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrInvalidTransition
	}

	if s.notifier != nil {
		title := fmt.Sprintf("Expense %s", toStatus)
		body := fmt.Sprintf("Your %s expense of %.2f on %s is %s.", updated.Category, updated.Amount, updated.Date, toStatus)
		_ = s.notifier.Notify(ctx, updated.CompanyID, updated.UserID, model.NotifyExpenseDecision, "normal", title, body)
	}
	return updated, nil
}

// Cancel is agent-initiated and only valid while pending.
func (s *ExpenseService) Cancel(ctx context.Context, id, userID bson.ObjectID) (*model.Expense, error) {
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	if e.UserID != userID {
		return nil, ErrForbidden
	}
	updated, err := s.expenses.Transition(ctx, id, model.ExpensePending, model.ExpenseCancelled, nil)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrInvalidTransition
	}
	return updated, nil
}

// SummarizeMonth folds a month's expenses into per-category and per-status
// totals. Sums go through decimal so cents do not drift.
func SummarizeMonth(month string, expenses []*model.Expense) dto.MonthlySummaryResp {
	total := decimal.Zero
	approved := decimal.Zero
	reimbursed := decimal.Zero
	pending := decimal.Zero
	byCategory := map[string]decimal.Decimal{}
	counted := 0

	for _, e := range expenses {
		if e.Status == model.ExpenseRejected || e.Status == model.ExpenseCancelled {
			continue
		}
		counted++
		amt := decimal.NewFromFloat(e.Amount)
		total = total.Add(amt)
		byCategory[e.Category] = byCategory[e.Category].Add(amt)
		switch e.Status {
		case model.ExpenseApproved:
			approved = approved.Add(amt)
		case model.ExpenseReimbursed:
			reimbursed = reimbursed.Add(amt)
		case model.ExpensePending:
			pending = pending.Add(amt)
		}
	}

	out := dto.MonthlySummaryResp{
		Month:      month,
		Total:      total.InexactFloat64(),
		Approved:   approved.InexactFloat64(),
		Reimbursed: reimbursed.InexactFloat64(),
		Pending:    pending.InexactFloat64(),
		ByCategory: map[string]float64{},
		Count:      counted,
	}
	for cat, amt := range byCategory {
		out.ByCategory[cat] = amt.InexactFloat64()
	}
	return out
}

func (s *ExpenseService) MonthlySummary(ctx context.Context, userID bson.ObjectID, month string) (*dto.MonthlySummaryResp, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("%w: month must be YYYY-MM", ErrValidation)
	}
	expenses, err := s.expenses.ListByUserMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	summary := SummarizeMonth(month, expenses)
	return &summary, nil
}

// ExportMonthXLSX renders a company's month as a spreadsheet.
func (s *ExpenseService) ExportMonthXLSX(ctx context.Context, companyID bson.ObjectID, month string) ([]byte, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("%w: month must be YYYY-MM", ErrValidation)
	}
	expenses, err := s.expenses.ListByCompanyMonth(ctx, companyID, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Expenses"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "User", "Category", "Amount", "Status", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, e := range expenses {
		values := []any{e.Date, e.UserID.Hex(), e.Category, e.Amount, e.Status, e.Description}
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
