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

type stubTargetStore struct {
	targets map[bson.ObjectID]*model.Target
	visits  []*model.Visit
}

func (s *stubTargetStore) Create(_ context.Context, t *model.Target) error {
	if s.targets == nil {
		s.targets = map[bson.ObjectID]*model.Target{}
	}
	t.ID = bson.NewObjectID()
	s.targets[t.ID] = t
	return nil
}

func (s *stubTargetStore) GetByID(_ context.Context, id bson.ObjectID) (*model.Target, error) {
	return s.targets[id], nil
}

func (s *stubTargetStore) ListByAgent(_ context.Context, companyID, agentID bson.ObjectID, _, _ string) ([]*model.Target, error) {
	var out []*model.Target
	for _, t := range s.targets {
		if t.CompanyID == companyID && t.AgentID == agentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubTargetStore) SetStatus(_ context.Context, id bson.ObjectID, status string) (*model.Target, error) {
	t := s.targets[id]
	if t != nil {
		t.Status = status
	}
	return t, nil
}

func (s *stubTargetStore) CreateVisit(_ context.Context, v *model.Visit) error {
	v.ID = bson.NewObjectID()
	s.visits = append(s.visits, v)
	return nil
}

func (s *stubTargetStore) ListVisitsByTarget(context.Context, bson.ObjectID) ([]*model.Visit, error) {
	return s.visits, nil
}

type recordingNotifier struct{ types []string }

func (n *recordingNotifier) Notify(_ context.Context, _, _ bson.ObjectID, typ, _, _, _ string) error {
	n.types = append(n.types, typ)
	return nil
}

func TestTargetVisitConversion(t *testing.T) {
	companyID := bson.NewObjectID()
	agentID := bson.NewObjectID()

	store := &stubTargetStore{}
	customers := &stubCustomerStore{}
	notifier := &recordingNotifier{}
	svc := NewTargetService(store, customers, notifier)

	target, err := svc.Create(context.Background(), companyID, dto.CreateTargetReq{
		AgentID:  agentID.Hex(),
		Name:     "Prospect One",
		Phone:    "020000000",
		Location: model.GeoPoint{Lat: 13.7, Lng: 100.5},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{model.NotifyTargetAssigned}, notifier.types)

	visit, err := svc.RecordVisit(context.Background(), target.ID, companyID, agentID, dto.RecordVisitReq{
		Outcome: model.OutcomeConverted,
	})
	require.NoError(t, err)

	// Conversion produced a CRM customer linked to the visit.
	require.NotNil(t, visit.CustomerID)
	created := customers.customers[*visit.CustomerID]
	require.NotNil(t, created)
	assert.Equal(t, "Prospect One", created.Name)
	assert.Equal(t, agentID, created.AgentID)
	assert.Equal(t, model.TargetConverted, target.Status)

	// A converted target cannot be visited again.
	_, err = svc.RecordVisit(context.Background(), target.ID, companyID, agentID, dto.RecordVisitReq{
		Outcome: model.OutcomeInterested,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTargetVisitOutcomes(t *testing.T) {
	companyID := bson.NewObjectID()
	agentID := bson.NewObjectID()

	newTarget := func(t *testing.T, svc *TargetService) *model.Target {
		t.Helper()
		target, err := svc.Create(context.Background(), companyID, dto.CreateTargetReq{
			AgentID:  agentID.Hex(),
			Name:     "Prospect",
			Location: model.GeoPoint{Lat: 1, Lng: 2},
		})
		require.NoError(t, err)
		return target
	}

	t.Run("no show marks skipped", func(t *testing.T) {
		svc := NewTargetService(&stubTargetStore{}, &stubCustomerStore{}, nil)
		target := newTarget(t, svc)
		_, err := svc.RecordVisit(context.Background(), target.ID, companyID, agentID, dto.RecordVisitReq{
			Outcome: model.OutcomeNoShow,
		})
		require.NoError(t, err)
		assert.Equal(t, model.TargetSkipped, target.Status)
	})

	t.Run("other outcomes mark visited", func(t *testing.T) {
		svc := NewTargetService(&stubTargetStore{}, &stubCustomerStore{}, nil)
		target := newTarget(t, svc)
		_, err := svc.RecordVisit(context.Background(), target.ID, companyID, agentID, dto.RecordVisitReq{
			Outcome: model.OutcomeFollowUp,
		})
		require.NoError(t, err)
		assert.Equal(t, model.TargetVisited, target.Status)
	})

	t.Run("unknown outcome rejected", func(t *testing.T) {
		svc := NewTargetService(&stubTargetStore{}, &stubCustomerStore{}, nil)
		target := newTarget(t, svc)
		_, err := svc.RecordVisit(context.Background(), target.ID, companyID, agentID, dto.RecordVisitReq{
			Outcome: "maybe",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("listing is scoped to the caller's company", func(t *testing.T) {
		svc := NewTargetService(&stubTargetStore{}, &stubCustomerStore{}, nil)
		newTarget(t, svc)

		mine, err := svc.ListByAgent(context.Background(), companyID, agentID, "", "")
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		// Another company's admin asking for the same agent id sees nothing.
		foreign, err := svc.ListByAgent(context.Background(), bson.NewObjectID(), agentID, "", "")
		require.NoError(t, err)
		assert.Empty(t, foreign)
	})

	t.Run("only the assigned agent records", func(t *testing.T) {
		svc := NewTargetService(&stubTargetStore{}, &stubCustomerStore{}, nil)
		target := newTarget(t, svc)
		_, err := svc.RecordVisit(context.Background(), target.ID, companyID, bson.NewObjectID(), dto.RecordVisitReq{
			Outcome: model.OutcomeInterested,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
