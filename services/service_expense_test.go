package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

func TestValidateExpense(t *testing.T) {
	valid := dto.CreateExpenseReq{Category: model.ExpenseTravel, Amount: 120.50, Date: "2025-05-01"}
	assert.NoError(t, ValidateExpense(valid))

	zero := valid
	zero.Amount = 0
	assert.ErrorIs(t, ValidateExpense(zero), ErrValidation)

	negative := valid
	negative.Amount = -10
	assert.ErrorIs(t, ValidateExpense(negative), ErrValidation)

	badCategory := valid
	badCategory.Category = "entertainment"
	assert.ErrorIs(t, ValidateExpense(badCategory), ErrValidation)

	badDate := valid
	badDate.Date = "05/01/2025"
	assert.ErrorIs(t, ValidateExpense(badDate), ErrValidation)
}

func TestSummarizeMonth(t *testing.T) {
	userID := bson.NewObjectID()
	expenses := []*model.Expense{
		{UserID: userID, Category: model.ExpenseTravel, Amount: 0.1, Status: model.ExpenseApproved},
		{UserID: userID, Category: model.ExpenseTravel, Amount: 0.2, Status: model.ExpenseApproved},
		{UserID: userID, Category: model.ExpenseFood, Amount: 99.99, Status: model.ExpensePending},
		{UserID: userID, Category: model.ExpenseFuel, Amount: 45, Status: model.ExpenseReimbursed},
		{UserID: userID, Category: model.ExpenseFood, Amount: 500, Status: model.ExpenseRejected},
		{UserID: userID, Category: model.ExpenseOther, Amount: 300, Status: model.ExpenseCancelled},
	}

	got := SummarizeMonth("2025-05", expenses)

	// 0.1 + 0.2 must not float-drift.
	assert.Equal(t, 0.3, got.ByCategory[model.ExpenseTravel])
	assert.Equal(t, 0.3, got.Approved)
	assert.Equal(t, 99.99, got.Pending)
	assert.Equal(t, 45.0, got.Reimbursed)
	assert.Equal(t, 145.29, got.Total)
	assert.NotContains(t, got.ByCategory, model.ExpenseOther)
	// Rejected and cancelled expenses are excluded from Count just like
	// from every total next to it.
	assert.Equal(t, 4, got.Count)
}

type stubExpenseStore struct {
	expenses map[bson.ObjectID]*model.Expense
}

func (s *stubExpenseStore) Create(_ context.Context, e *model.Expense) error {
	if s.expenses == nil {
		s.expenses = map[bson.ObjectID]*model.Expense{}
	}
	e.ID = bson.NewObjectID()
	s.expenses[e.ID] = e
	return nil
}

func (s *stubExpenseStore) GetByID(_ context.Context, id bson.ObjectID) (*model.Expense, error) {
	return s.expenses[id], nil
}

func (s *stubExpenseStore) ListByUser(context.Context, bson.ObjectID, string) ([]*model.Expense, error) {
	return nil, nil
}

func (s *stubExpenseStore) ListByCompany(context.Context, bson.ObjectID, string) ([]*model.Expense, error) {
	return nil, nil
}

func (s *stubExpenseStore) ListByUserMonth(context.Context, bson.ObjectID, string) ([]*model.Expense, error) {
	return nil, nil
}

func (s *stubExpenseStore) ListByCompanyMonth(context.Context, bson.ObjectID, string) ([]*model.Expense, error) {
	return nil, nil
}

func (s *stubExpenseStore) Transition(_ context.Context, id bson.ObjectID, from, to string, _ *bson.ObjectID) (*model.Expense, error) {
	e := s.expenses[id]
	if e == nil || e.Status != from {
		return nil, nil
	}
	e.Status = to
	return e, nil
}

func TestExpenseDecideTransitions(t *testing.T) {
	companyID := bson.NewObjectID()
	adminID := bson.NewObjectID()

	store := &stubExpenseStore{}
	svc := NewExpenseService(store, nil)

	e, err := svc.Create(context.Background(), companyID, bson.NewObjectID(), dto.CreateExpenseReq{
		Category: model.ExpenseFood, Amount: 50, Date: "2025-05-02",
	})
	require.NoError(t, err)

	// reimburse straight from pending is invalid
	_, err = svc.Decide(context.Background(), e.ID, adminID, companyID, model.ExpenseReimbursed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	updated, err := svc.Decide(context.Background(), e.ID, adminID, companyID, model.ExpenseApproved)
	require.NoError(t, err)
	assert.Equal(t, model.ExpenseApproved, updated.Status)

	updated, err = svc.Decide(context.Background(), e.ID, adminID, companyID, model.ExpenseReimbursed)
	require.NoError(t, err)
	assert.Equal(t, model.ExpenseReimbursed, updated.Status)

	// cancel after reimbursement is invalid
	_, err = svc.Cancel(context.Background(), e.ID, e.UserID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// unknown status
	_, err = svc.Decide(context.Background(), e.ID, adminID, companyID, "archived")
	assert.ErrorIs(t, err, ErrValidation)

	// cross-tenant decision
	_, err = svc.Decide(context.Background(), e.ID, adminID, bson.NewObjectID(), model.ExpenseApproved)
	assert.ErrorIs(t, err, ErrForbidden)
}
