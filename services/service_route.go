package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/internal/routing"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type RoutePlanner interface {
	PlanTrip(ctx context.Context, points []model.GeoPoint) (*routing.Trip, error)
}

type RouteTargetStore interface {
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Target, error)
}

type RouteService struct {
	planner RoutePlanner
	targets RouteTargetStore
}

func NewRouteService(planner RoutePlanner, targets RouteTargetStore) *RouteService {
	return &RouteService{planner: planner, targets: targets}
}

// Plan resolves the request into waypoints and hands them to the mapping
// service. The start position is always point zero and keeps its place;
// everything after it may be reordered.
func (s *RouteService) Plan(ctx context.Context, companyID bson.ObjectID, req dto.PlanRouteReq) (*dto.PlanRouteResp, error) {
	if s.planner == nil {
		return nil, fmt.Errorf("%w: route planning is not configured", ErrValidation)
	}

	points := []model.GeoPoint{req.Start}
	targetIDs := []string{""} // index-aligned with points; start has no target

	switch {
	case len(req.Targets) > 0:
		for _, raw := range req.Targets {
			id, err := bson.ObjectIDFromHex(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: bad target id %q", ErrValidation, raw)
			}
			t, err := s.targets.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if t == nil || t.CompanyID != companyID {
				return nil, fmt.Errorf("%w: target %s", ErrNotFound, raw)
			}
			points = append(points, t.Location)
			targetIDs = append(targetIDs, raw)
		}
	case len(req.Points) > 0:
		for _, p := range req.Points {
			points = append(points, p)
			targetIDs = append(targetIDs, "")
		}
	default:
		return nil, fmt.Errorf("%w: targets or points required", ErrValidation)
	}

	trip, err := s.planner.PlanTrip(ctx, points)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	resp := &dto.PlanRouteResp{
		TotalDistanceM:   trip.TotalDistanceM,
		TotalDurationSec: trip.TotalDurationSec,
	}
	for order, inputIdx := range trip.Order {
		if inputIdx >= len(points) {
			continue
		}
		wp := dto.Waypoint{
			Order:    order,
			TargetID: targetIDs[inputIdx],
			Location: points[inputIdx],
		}
		// Legs lead into stops 1..n; the start has no inbound leg.
		if order > 0 && order-1 < len(trip.Legs) {
			wp.LegDistanceM = trip.Legs[order-1].DistanceM
			wp.LegDurationSec = trip.Legs[order-1].DurationSec
		}
		resp.Waypoints = append(resp.Waypoints, wp)
	}
	return resp, nil
}
