package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/internal/routing"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type stubPlanner struct {
	points []model.GeoPoint
	trip   *routing.Trip
}

func (s *stubPlanner) PlanTrip(_ context.Context, points []model.GeoPoint) (*routing.Trip, error) {
	s.points = points
	return s.trip, nil
}

func TestRoutePlanOverTargets(t *testing.T) {
	companyID := bson.NewObjectID()
	agentID := bson.NewObjectID()

	targets := &stubTargetStore{}
	targetSvc := NewTargetService(targets, &stubCustomerStore{}, nil)
	t1, err := targetSvc.Create(context.Background(), companyID, dto.CreateTargetReq{
		AgentID: agentID.Hex(), Name: "A", Location: model.GeoPoint{Lat: 1, Lng: 1},
	})
	require.NoError(t, err)
	t2, err := targetSvc.Create(context.Background(), companyID, dto.CreateTargetReq{
		AgentID: agentID.Hex(), Name: "B", Location: model.GeoPoint{Lat: 2, Lng: 2},
	})
	require.NoError(t, err)

	planner := &stubPlanner{trip: &routing.Trip{
		// Service visits t2 before t1.
		Order:            []int{0, 2, 1},
		Legs:             []routing.Leg{{DistanceM: 1000, DurationSec: 120}, {DistanceM: 500, DurationSec: 60}},
		TotalDistanceM:   1500,
		TotalDurationSec: 180,
	}}
	svc := NewRouteService(planner, targets)

	resp, err := svc.Plan(context.Background(), companyID, dto.PlanRouteReq{
		Start:   model.GeoPoint{Lat: 0, Lng: 0},
		Targets: []string{t1.ID.Hex(), t2.ID.Hex()},
	})
	require.NoError(t, err)

	require.Len(t, planner.points, 3)
	assert.Equal(t, model.GeoPoint{Lat: 0, Lng: 0}, planner.points[0])

	require.Len(t, resp.Waypoints, 3)
	assert.Equal(t, "", resp.Waypoints[0].TargetID)
	assert.Equal(t, t2.ID.Hex(), resp.Waypoints[1].TargetID)
	assert.Equal(t, t1.ID.Hex(), resp.Waypoints[2].TargetID)
	assert.Equal(t, 1000.0, resp.Waypoints[1].LegDistanceM)
	assert.Equal(t, 1500.0, resp.TotalDistanceM)
}

func TestRoutePlanValidation(t *testing.T) {
	svc := NewRouteService(&stubPlanner{}, &stubTargetStore{})

	_, err := svc.Plan(context.Background(), bson.NewObjectID(), dto.PlanRouteReq{
		Start: model.GeoPoint{Lat: 0, Lng: 0},
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Plan(context.Background(), bson.NewObjectID(), dto.PlanRouteReq{
		Start:   model.GeoPoint{},
		Targets: []string{"zzz"},
	})
	assert.ErrorIs(t, err, ErrValidation)

	// Targets of another company are invisible.
	companyID := bson.NewObjectID()
	targets := &stubTargetStore{}
	targetSvc := NewTargetService(targets, &stubCustomerStore{}, nil)
	tgt, err := targetSvc.Create(context.Background(), companyID, dto.CreateTargetReq{
		AgentID: bson.NewObjectID().Hex(), Name: "A", Location: model.GeoPoint{Lat: 1, Lng: 1},
	})
	require.NoError(t, err)

	svc = NewRouteService(&stubPlanner{trip: &routing.Trip{}}, targets)
	_, err = svc.Plan(context.Background(), bson.NewObjectID(), dto.PlanRouteReq{
		Start:   model.GeoPoint{},
		Targets: []string{tgt.ID.Hex()},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
