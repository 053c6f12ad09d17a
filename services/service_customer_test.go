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

type stubCustomerStore struct {
	customers map[bson.ObjectID]*model.Customer
	purchases map[bson.ObjectID]*model.Purchase
	counters  []bson.M
}

func (s *stubCustomerStore) Create(_ context.Context, c *model.Customer) error {
	if s.customers == nil {
		s.customers = map[bson.ObjectID]*model.Customer{}
	}
	c.ID = bson.NewObjectID()
	s.customers[c.ID] = c
	return nil
}

func (s *stubCustomerStore) GetByID(_ context.Context, id bson.ObjectID) (*model.Customer, error) {
	return s.customers[id], nil
}

func (s *stubCustomerStore) List(context.Context, bson.ObjectID, *bson.ObjectID, string, int64) ([]*model.Customer, error) {
	return nil, nil
}

func (s *stubCustomerStore) Update(_ context.Context, id bson.ObjectID, _ bson.M) (*model.Customer, error) {
	return s.customers[id], nil
}

func (s *stubCustomerStore) Delete(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := s.customers[id]
	delete(s.customers, id)
	return ok, nil
}

func (s *stubCustomerStore) ApplyCounters(_ context.Context, id bson.ObjectID, inc bson.M, _ bson.M) error {
	s.counters = append(s.counters, inc)
	c := s.customers[id]
	if v, ok := inc["total_purchases"].(int); ok {
		c.TotalPurchases += v
	}
	if v, ok := inc["total_purchase_value"].(float64); ok {
		c.TotalPurchaseValue += v
	}
	if v, ok := inc["interaction_count"].(int); ok {
		c.InteractionCount += v
	}
	return nil
}

func (s *stubCustomerStore) AddInteraction(_ context.Context, in *model.Interaction) error {
	in.ID = bson.NewObjectID()
	return nil
}

func (s *stubCustomerStore) ListInteractions(context.Context, bson.ObjectID, int64) ([]*model.Interaction, error) {
	return nil, nil
}

func (s *stubCustomerStore) AddNote(_ context.Context, n *model.CustomerNote) error {
	n.ID = bson.NewObjectID()
	return nil
}

func (s *stubCustomerStore) ListNotes(context.Context, bson.ObjectID, int64) ([]*model.CustomerNote, error) {
	return nil, nil
}

func (s *stubCustomerStore) AddPurchase(_ context.Context, p *model.Purchase) error {
	if s.purchases == nil {
		s.purchases = map[bson.ObjectID]*model.Purchase{}
	}
	p.ID = bson.NewObjectID()
	s.purchases[p.ID] = p
	return nil
}

func (s *stubCustomerStore) GetPurchase(_ context.Context, id bson.ObjectID) (*model.Purchase, error) {
	return s.purchases[id], nil
}

func (s *stubCustomerStore) ListPurchases(context.Context, bson.ObjectID, int64) ([]*model.Purchase, error) {
	return nil, nil
}

func (s *stubCustomerStore) DeletePurchase(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := s.purchases[id]
	delete(s.purchases, id)
	return ok, nil
}

func TestCustomerPurchaseCounters(t *testing.T) {
	companyID := bson.NewObjectID()
	agentID := bson.NewObjectID()

	store := &stubCustomerStore{}
	svc := NewCustomerService(store)

	c, err := svc.Create(context.Background(), companyID, dto.CreateCustomerReq{Name: "Acme"})
	require.NoError(t, err)

	p, err := svc.AddPurchase(context.Background(), c.ID, companyID, agentID, dto.CreatePurchaseReq{Amount: 250})
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalPurchases)
	assert.Equal(t, 250.0, c.TotalPurchaseValue)

	_, err = svc.AddPurchase(context.Background(), c.ID, companyID, agentID, dto.CreatePurchaseReq{Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalPurchases)
	assert.Equal(t, 350.0, c.TotalPurchaseValue)

	// Deleting backs out exactly the purchase amount.
	require.NoError(t, svc.DeletePurchase(context.Background(), p.ID, companyID))
	assert.Equal(t, 1, c.TotalPurchases)
	assert.Equal(t, 100.0, c.TotalPurchaseValue)

	err = svc.DeletePurchase(context.Background(), p.ID, companyID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerAddPurchaseRejectsNonPositive(t *testing.T) {
	store := &stubCustomerStore{}
	svc := NewCustomerService(store)
	companyID := bson.NewObjectID()

	c, err := svc.Create(context.Background(), companyID, dto.CreateCustomerReq{Name: "Acme"})
	require.NoError(t, err)

	_, err = svc.AddPurchase(context.Background(), c.ID, companyID, bson.NewObjectID(), dto.CreatePurchaseReq{Amount: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCustomerTenantIsolation(t *testing.T) {
	store := &stubCustomerStore{}
	svc := NewCustomerService(store)

	c, err := svc.Create(context.Background(), bson.NewObjectID(), dto.CreateCustomerReq{Name: "Acme"})
	require.NoError(t, err)

	// Another company's read comes back as not found, not forbidden.
	_, err = svc.Get(context.Background(), c.ID, bson.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerInteractionBumpsCounter(t *testing.T) {
	companyID := bson.NewObjectID()
	store := &stubCustomerStore{}
	svc := NewCustomerService(store)

	c, err := svc.Create(context.Background(), companyID, dto.CreateCustomerReq{Name: "Acme"})
	require.NoError(t, err)

	_, err = svc.AddInteraction(context.Background(), c.ID, companyID, bson.NewObjectID(), dto.CreateInteractionReq{Type: "call"})
	require.NoError(t, err)
	assert.Equal(t, 1, c.InteractionCount)
}
