package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type TargetStore interface {
	Create(ctx context.Context, t *model.Target) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Target, error)
	ListByAgent(ctx context.Context, companyID, agentID bson.ObjectID, date, status string) ([]*model.Target, error)
	SetStatus(ctx context.Context, id bson.ObjectID, status string) (*model.Target, error)
	CreateVisit(ctx context.Context, v *model.Visit) error
	ListVisitsByTarget(ctx context.Context, targetID bson.ObjectID) ([]*model.Visit, error)
}

type TargetCustomerStore interface {
	Create(ctx context.Context, c *model.Customer) error
}

type TargetService struct {
	targets   TargetStore
	customers TargetCustomerStore
	notifier  Notifier
}

func NewTargetService(targets TargetStore, customers TargetCustomerStore, notifier Notifier) *TargetService {
	return &TargetService{targets: targets, customers: customers, notifier: notifier}
}

func (s *TargetService) Create(ctx context.Context, companyID bson.ObjectID, req dto.CreateTargetReq) (*model.Target, error) {
	agentID, err := bson.ObjectIDFromHex(req.AgentID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad agentId", ErrValidation)
	}
	if req.PlannedDate != "" {
		if _, err := time.Parse(dateLayout, req.PlannedDate); err != nil {
			return nil, fmt.Errorf("%w: bad plannedDate", ErrValidation)
		}
	}

	t := &model.Target{
		CompanyID:   companyID,
		AgentID:     agentID,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Location:    req.Location,
		Status:      model.TargetPending,
		PlannedDate: req.PlannedDate,
	}
	if err := s.targets.Create(ctx, t); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, companyID, agentID, model.NotifyTargetAssigned, "normal",
			"New visit target", fmt.Sprintf("%s was assigned to you.", t.Name))
	}
	return t, nil
}

func (s *TargetService) Get(ctx context.Context, id, companyID bson.ObjectID) (*model.Target, error) {
	t, err := s.targets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.CompanyID != companyID {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *TargetService) ListByAgent(ctx context.Context, companyID, agentID bson.ObjectID, date, status string) ([]*model.Target, error) {
	return s.targets.ListByAgent(ctx, companyID, agentID, date, status)
}

// RecordVisit closes out a target visit. A converted outcome creates a
// Customer from the target and links it on the visit.
func (s *TargetService) RecordVisit(ctx context.Context, targetID, companyID, agentID bson.ObjectID, req dto.RecordVisitReq) (*model.Visit, error) {
	if !model.ValidOutcome(req.Outcome) {
		return nil, fmt.Errorf("%w: unknown outcome %q", ErrValidation, req.Outcome)
	}
	t, err := s.Get(ctx, targetID, companyID)
	if err != nil {
		return nil, err
	}
	if t.AgentID != agentID {
		return nil, ErrForbidden
	}
	if t.Status == model.TargetConverted {
		return nil, fmt.Errorf("%w: target already converted", ErrInvalidTransition)
	}

	v := &model.Visit{
		CompanyID: companyID,
		TargetID:  targetID,
		AgentID:   agentID,
		Outcome:   req.Outcome,
		Note:      req.Note,
		Location:  req.Location,
	}

	status := model.TargetVisited
	if req.Outcome == model.OutcomeConverted {
		status = model.TargetConverted
		customer := &model.Customer{
			CompanyID: companyID,
			AgentID:   agentID,
			Name:      t.Name,
			Phone:     t.Phone,
			Address:   t.Address,
			Location:  &t.Location,
			Status:    "active",
			Priority:  "medium",
		}
		if err := s.customers.Create(ctx, customer); err != nil {
			return nil, err
		}
		v.CustomerID = &customer.ID
	} else if req.Outcome == model.OutcomeNoShow {
		status = model.TargetSkipped
	}

	if err := s.targets.CreateVisit(ctx, v); err != nil {
		return nil, err
	}
	if _, err := s.targets.SetStatus(ctx, targetID, status); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *TargetService) ListVisits(ctx context.Context, targetID, companyID bson.ObjectID) ([]*model.Visit, error) {
	if _, err := s.Get(ctx, targetID, companyID); err != nil {
		return nil, err
	}
	return s.targets.ListVisitsByTarget(ctx, targetID)
}
