package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/configs"
	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type CustomerStore interface {
	Create(ctx context.Context, c *model.Customer) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Customer, error)
	List(ctx context.Context, companyID bson.ObjectID, agentID *bson.ObjectID, status string, limit int64) ([]*model.Customer, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Customer, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
	ApplyCounters(ctx context.Context, id bson.ObjectID, inc bson.M, set bson.M) error
	AddInteraction(ctx context.Context, in *model.Interaction) error
	ListInteractions(ctx context.Context, customerID bson.ObjectID, limit int64) ([]*model.Interaction, error)
	AddNote(ctx context.Context, n *model.CustomerNote) error
	ListNotes(ctx context.Context, customerID bson.ObjectID, limit int64) ([]*model.CustomerNote, error)
	AddPurchase(ctx context.Context, p *model.Purchase) error
	GetPurchase(ctx context.Context, id bson.ObjectID) (*model.Purchase, error)
	ListPurchases(ctx context.Context, customerID bson.ObjectID, limit int64) ([]*model.Purchase, error)
	DeletePurchase(ctx context.Context, id bson.ObjectID) (bool, error)
}

type CustomerService struct {
	customers CustomerStore
}

func NewCustomerService(customers CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) Create(ctx context.Context, companyID bson.ObjectID, req dto.CreateCustomerReq) (*model.Customer, error) {
	c := &model.Customer{
		CompanyID: companyID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Location:  req.Location,
		Tags:      req.Tags,
		Status:    req.Status,
		Priority:  req.Priority,
	}
	if c.Status == "" {
		c.Status = "lead"
	}
	if c.Priority == "" {
		c.Priority = "medium"
	}
	if req.AgentID != "" {
		agentID, err := bson.ObjectIDFromHex(req.AgentID)
		if err != nil {
			return nil, fmt.Errorf("%w: bad agentId", ErrValidation)
		}
		c.AgentID = agentID
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get enforces tenant ownership: customers of another company read as
// not found.
func (s *CustomerService) Get(ctx context.Context, id, companyID bson.ObjectID) (*model.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.CompanyID != companyID {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *CustomerService) List(ctx context.Context, companyID bson.ObjectID, agentID *bson.ObjectID, status string, limit int64) ([]*model.Customer, error) {
	if limit <= 0 || limit > configs.MaxLimitList {
		limit = configs.DefaultLimitList
	}
	return s.customers.List(ctx, companyID, agentID, status, limit)
}

func (s *CustomerService) Update(ctx context.Context, id, companyID bson.ObjectID, req dto.UpdateCustomerReq) (*model.Customer, error) {
	if _, err := s.Get(ctx, id, companyID); err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if req.Location != nil {
		set["location"] = req.Location
	}
	if req.Tags != nil {
		set["tags"] = req.Tags
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Priority != nil {
		set["priority"] = *req.Priority
	}
	if req.AgentID != nil {
		agentID, err := bson.ObjectIDFromHex(*req.AgentID)
		if err != nil {
			return nil, fmt.Errorf("%w: bad agentId", ErrValidation)
		}
		set["agent_id"] = agentID
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	return s.customers.Update(ctx, id, set)
}

func (s *CustomerService) Delete(ctx context.Context, id, companyID bson.ObjectID) error {
	if _, err := s.Get(ctx, id, companyID); err != nil {
		return err
	}
	ok, err := s.customers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *CustomerService) AddInteraction(ctx context.Context, customerID, companyID, agentID bson.ObjectID, req dto.CreateInteractionReq) (*model.Interaction, error) {
	if _, err := s.Get(ctx, customerID, companyID); err != nil {
		return nil, err
	}
	in := &model.Interaction{
		CustomerID: customerID,
		AgentID:    agentID,
		Type:       req.Type,
		Outcome:    req.Outcome,
		Notes:      req.Notes,
	}
	if err := s.customers.AddInteraction(ctx, in); err != nil {
		return nil, err
	}
	err := s.customers.ApplyCounters(ctx, customerID,
		bson.M{"interaction_count": 1},
		bson.M{"last_interaction_at": time.Now()})
	if err != nil {
		return nil, err
	}
	return in, nil
}

func (s *CustomerService) ListInteractions(ctx context.Context, customerID, companyID bson.ObjectID) ([]*model.Interaction, error) {
	if _, err := s.Get(ctx, customerID, companyID); err != nil {
		return nil, err
	}
	return s.customers.ListInteractions(ctx, customerID, configs.MaxLimitList)
}

func (s *CustomerService) AddNote(ctx context.Context, customerID, companyID, authorID bson.ObjectID, text string) (*model.CustomerNote, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text required", ErrValidation)
	}
	if _, err := s.Get(ctx, customerID, companyID); err != nil {
		return nil, err
	}
	n := &model.CustomerNote{CustomerID: customerID, AuthorID: authorID, Text: text}
	if err := s.customers.AddNote(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *CustomerService) ListNotes(ctx context.Context, customerID, companyID bson.ObjectID) ([]*model.CustomerNote, error) {
	if _, err := s.Get(ctx, customerID, companyID); err != nil {
		return nil, err
	}
	return s.customers.ListNotes(ctx, customerID, configs.MaxLimitList)
}

func (s *CustomerService) AddPurchase(ctx context.Context, customerID, companyID, agentID bson.ObjectID, req dto.CreatePurchaseReq) (*model.Purchase, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if _, err := s.Get(ctx, customerID, companyID); err != nil {
		return nil, err
	}
	p := &model.Purchase{
		CustomerID: customerID,
		AgentID:    agentID,
		Amount:     req.Amount,
		Items:      req.Items,
	}
	if err := s.customers.AddPurchase(ctx, p); err != nil {
		return nil, err
	}
	err := s.customers.ApplyCounters(ctx, customerID,
		bson.M{"total_purchases": 1, "total_purchase_value": p.Amount},
		bson.M{})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CustomerService) ListPurchases(ctx context.Context, customerID, companyID bson.ObjectID) ([]*model.Purchase, error) {
	if _, err := s.Get(ctx, customerID, companyID); err != nil {
		return nil, err
	}
	return s.customers.ListPurchases(ctx, customerID, configs.MaxLimitList)
}

// DeletePurchase removes the record and backs its amount out of the
// customer counters.
func (s *CustomerService) DeletePurchase(ctx context.Context, purchaseID, companyID bson.ObjectID) error {
	p, err := s.customers.GetPurchase(ctx, purchaseID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	if _, err := s.Get(ctx, p.CustomerID, companyID); err != nil {
		return err
	}
	ok, err := s.customers.DeletePurchase(ctx, purchaseID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return s.customers.ApplyCounters(ctx, p.CustomerID,
		bson.M{"total_purchases": -1, "total_purchase_value": -p.Amount},
		bson.M{})
}
