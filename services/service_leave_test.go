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

func TestLeaveDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration string
		want     float64
		wantErr  bool
	}{
		{name: "single full day", start: "2025-03-10", end: "2025-03-10", duration: "full", want: 1},
		{name: "default duration is full", start: "2025-03-10", end: "2025-03-10", want: 1},
		{name: "inclusive range", start: "2025-03-10", end: "2025-03-14", want: 5},
		{name: "half day", start: "2025-03-10", end: "2025-03-10", duration: "half", want: 0.5},
		{name: "half day over range rejected", start: "2025-03-10", end: "2025-03-11", duration: "half", wantErr: true},
		{name: "end before start", start: "2025-03-10", end: "2025-03-09", wantErr: true},
		{name: "bad date", start: "10-03-2025", end: "2025-03-10", wantErr: true},
		{name: "unknown duration", start: "2025-03-10", end: "2025-03-10", duration: "quarter", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LeaveDays(tt.start, tt.end, tt.duration)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type stubLeaveStore struct {
	requests map[bson.ObjectID]*model.LeaveRequest
	balance  *model.LeaveBalance
	adjusted []float64
}

func (s *stubLeaveStore) Create(_ context.Context, lr *model.LeaveRequest) error {
	lr.ID = bson.NewObjectID()
	if s.requests == nil {
		s.requests = map[bson.ObjectID]*model.LeaveRequest{}
	}
	s.requests[lr.ID] = lr
	return nil
}

func (s *stubLeaveStore) GetByID(_ context.Context, id bson.ObjectID) (*model.LeaveRequest, error) {
	return s.requests[id], nil
}

func (s *stubLeaveStore) ListByUser(context.Context, bson.ObjectID, string) ([]*model.LeaveRequest, error) {
	return nil, nil
}

func (s *stubLeaveStore) ListByCompany(context.Context, bson.ObjectID, string) ([]*model.LeaveRequest, error) {
	return nil, nil
}

func (s *stubLeaveStore) Transition(_ context.Context, id bson.ObjectID, from, to string, _ *bson.ObjectID) (*model.LeaveRequest, error) {
	lr := s.requests[id]
	if lr == nil || lr.Status != from {
		return nil, nil
	}
	lr.Status = to
	return lr, nil
}

func (s *stubLeaveStore) GetBalance(context.Context, bson.ObjectID) (*model.LeaveBalance, error) {
	return s.balance, nil
}

func (s *stubLeaveStore) AdjustBalance(_ context.Context, _ bson.ObjectID, leaveType string, delta float64) error {
	s.adjusted = append(s.adjusted, delta)
	s.balance.Balances[leaveType] += delta
	return nil
}

func TestLeaveApprove(t *testing.T) {
	companyID := bson.NewObjectID()
	userID := bson.NewObjectID()
	adminID := bson.NewObjectID()

	newService := func(available float64) (*LeaveService, *stubLeaveStore, *model.LeaveRequest) {
		store := &stubLeaveStore{
			balance: &model.LeaveBalance{
				UserID:   userID,
				Balances: map[string]float64{model.LeaveAnnual: available},
			},
		}
		svc := NewLeaveService(store, nil)
		lr, err := svc.Create(context.Background(), companyID, userID, dto.CreateLeaveReq{
			Type:      model.LeaveAnnual,
			StartDate: "2025-03-10",
			EndDate:   "2025-03-12",
		})
		require.NoError(t, err)
		return svc, store, lr
	}

	t.Run("approves and reserves balance", func(t *testing.T) {
		svc, store, lr := newService(10)
		updated, err := svc.Approve(context.Background(), lr.ID, adminID, companyID)
		require.NoError(t, err)
		assert.Equal(t, model.LeaveApproved, updated.Status)
		assert.Equal(t, 7.0, store.balance.Balances[model.LeaveAnnual])
	})

	t.Run("insufficient balance", func(t *testing.T) {
		svc, store, lr := newService(2)
		_, err := svc.Approve(context.Background(), lr.ID, adminID, companyID)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Empty(t, store.adjusted)
	})

	t.Run("wrong company is forbidden", func(t *testing.T) {
		svc, _, lr := newService(10)
		_, err := svc.Approve(context.Background(), lr.ID, adminID, bson.NewObjectID())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("already decided", func(t *testing.T) {
		svc, _, lr := newService(10)
		_, err := svc.Approve(context.Background(), lr.ID, adminID, companyID)
		require.NoError(t, err)
		_, err = svc.Approve(context.Background(), lr.ID, adminID, companyID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestLeaveCancelRestoresBalance(t *testing.T) {
	companyID := bson.NewObjectID()
	userID := bson.NewObjectID()

	store := &stubLeaveStore{
		balance: &model.LeaveBalance{
			UserID:   userID,
			Balances: map[string]float64{model.LeaveSick: 5},
		},
	}
	svc := NewLeaveService(store, nil)

	lr, err := svc.Create(context.Background(), companyID, userID, dto.CreateLeaveReq{
		Type:      model.LeaveSick,
		StartDate: "2025-04-01",
		EndDate:   "2025-04-02",
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), lr.ID, bson.NewObjectID(), companyID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, store.balance.Balances[model.LeaveSick])

	_, err = svc.Cancel(context.Background(), lr.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, store.balance.Balances[model.LeaveSick])
}
