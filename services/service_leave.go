package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

const dateLayout = "2006-01-02"

type LeaveStore interface {
	Create(ctx context.Context, req *model.LeaveRequest) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.LeaveRequest, error)
	ListByUser(ctx context.Context, userID bson.ObjectID, status string) ([]*model.LeaveRequest, error)
	ListByCompany(ctx context.Context, companyID bson.ObjectID, status string) ([]*model.LeaveRequest, error)
	Transition(ctx context.Context, id bson.ObjectID, fromStatus, toStatus string, decidedBy *bson.ObjectID) (*model.LeaveRequest, error)
	GetBalance(ctx context.Context, userID bson.ObjectID) (*model.LeaveBalance, error)
	AdjustBalance(ctx context.Context, userID bson.ObjectID, leaveType string, delta float64) error
}

// Notifier raises an in-app notification (and push, per preferences) for a
// user. Implemented by NotificationService.
type Notifier interface {
	Notify(ctx context.Context, companyID, userID bson.ObjectID, typ, priority, title, body string) error
}

type LeaveService struct {
	leaves   LeaveStore
	notifier Notifier
}

func NewLeaveService(leaves LeaveStore, notifier Notifier) *LeaveService {
	return &LeaveService{leaves: leaves, notifier: notifier}
}

// LeaveDays counts calendar days between start and end inclusive, halved
// for half-day duration. Half-day requires a single-day range.
func LeaveDays(startDate, endDate, duration string) (float64, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, fmt.Errorf("%w: bad startDate", ErrValidation)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, fmt.Errorf("%w: bad endDate", ErrValidation)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("%w: endDate before startDate", ErrValidation)
	}

	days := float64(end.Sub(start).Hours()/24) + 1

	switch duration {
	case model.DurationHalf:
		if days != 1 {
			return 0, fmt.Errorf("%w: half-day leave must cover a single day", ErrValidation)
		}
		return 0.5, nil
	case "", model.DurationFull:
		return days, nil
	default:
		return 0, fmt.Errorf("%w: duration must be full or half", ErrValidation)
	}
}

func (s *LeaveService) Create(ctx context.Context, companyID, userID bson.ObjectID, req dto.CreateLeaveReq) (*model.LeaveRequest, error) {
	if !model.ValidLeaveType(req.Type) {
		return nil, fmt.Errorf("%w: unknown leave type %q", ErrValidation, req.Type)
	}
	days, err := LeaveDays(req.StartDate, req.EndDate, req.Duration)
	if err != nil {
		return nil, err
	}

	duration := req.Duration
	if duration == "" {
		duration = model.DurationFull
	}
	lr := &model.LeaveRequest{
		CompanyID: companyID,
		UserID:    userID,
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Duration:  duration,
		Days:      days,
		Reason:    req.Reason,
		Status:    model.LeavePending,
	}
	if err := s.leaves.Create(ctx, lr); err != nil {
		return nil, err
	}
	return lr, nil
}

func (s *LeaveService) ListByUser(ctx context.Context, userID bson.ObjectID, status string) ([]*model.LeaveRequest, error) {
	return s.leaves.ListByUser(ctx, userID, status)
}

func (s *LeaveService) ListByCompany(ctx context.Context, companyID bson.ObjectID, status string) ([]*model.LeaveRequest, error) {
	return s.leaves.ListByCompany(ctx, companyID, status)
}

// Approve reserves balance first, then transitions; the reservation is
// rolled back when the request was concurrently decided.
func (s *LeaveService) Approve(ctx context.Context, id, adminID, companyID bson.ObjectID) (*model.LeaveRequest, error) {
	lr, err := s.getForCompany(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	if lr.Status != model.LeavePending {
		return nil, ErrInvalidTransition
	}

	balance, err := s.leaves.GetBalance(ctx, lr.UserID)
	if err != nil {
		return nil, err
	}
	if balance == nil || balance.Balances[lr.Type] < lr.Days {
		return nil, ErrInsufficientBalance
	}
	if err := s.leaves.AdjustBalance(ctx, lr.UserID, lr.Type, -lr.Days); err != nil {
		return nil, err
	}

	updated, err := s.leaves.Transition(ctx, id, model.LeavePending, model.LeaveApproved, &adminID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Lost the race with another decision; give the days back.
		_ = s.leaves.AdjustBalance(ctx, lr.UserID, lr.Type, lr.Days)
		return nil, ErrInvalidTransition
	}

	s.notifyDecision(ctx, updated, "approved")
	return updated, nil
}

func (s *LeaveService) Reject(ctx context.Context, id, adminID, companyID bson.ObjectID) (*model.LeaveRequest, error) {
	lr, err := s.getForCompany(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	if lr.Status != model.LeavePending {
		return nil, ErrInvalidTransition
	}
	updated, err := s.leaves.Transition(ctx, id, model.LeavePending, model.LeaveRejected, &adminID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrInvalidTransition
	}
	s.notifyDecision(ctx, updated, "rejected")
	return updated, nil
}

// Cancel is agent-initiated. Cancelling an approved request restores the
// reserved balance.
func (s *LeaveService) Cancel(ctx context.Context, id, userID bson.ObjectID) (*model.LeaveRequest, error) {
	lr, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lr == nil {
		return nil, ErrNotFound
	}
	if lr.UserID != userID {
		return nil, ErrForbidden
	}

	switch lr.Status {
	case model.LeavePending:
		updated, err := s.leaves.Transition(ctx, id, model.LeavePending, model.LeaveCancelled, nil)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, ErrInvalidTransition
		}
		return updated, nil
	case model.LeaveApproved:
		updated, err := s.leaves.Transition(ctx, id, model.LeaveApproved, model.LeaveCancelled, nil)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, ErrInvalidTransition
		}
		if err := s.leaves.AdjustBalance(ctx, lr.UserID, lr.Type, lr.Days); err != nil {
			return nil, err
		}
		return updated, nil
	default:
		return nil, ErrInvalidTransition
	}
}

func (s *LeaveService) Balance(ctx context.Context, userID bson.ObjectID) (*model.LeaveBalance, error) {
	b, err := s.leaves.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *LeaveService) getForCompany(ctx context.Context, id, companyID bson.ObjectID) (*model.LeaveRequest, error) {
	lr, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lr == nil {
		return nil, ErrNotFound
	}
	if lr.CompanyID != companyID {
		return nil, ErrForbidden
	}
	return lr, nil
}

func (s *LeaveService) notifyDecision(ctx context.Context, lr *model.LeaveRequest, verb string) {
	if s.notifier == nil {
		return
	}
	title := fmt.Sprintf("Leave request %s", verb)
	body := fmt.Sprintf("Your %s leave (%s to %s) was %s.", lr.Type, lr.StartDate, lr.EndDate, verb)
	// Delivery failure must not fail the decision.
	_ = s.notifier.Notify(ctx, lr.CompanyID, lr.UserID, model.NotifyLeaveDecision, "normal", title, body)
}
