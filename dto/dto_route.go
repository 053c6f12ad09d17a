package dto

import "github.com/anishanishy81-byte/poverse-sub003/model"

// Route planning is delegated to the external mapping service; these types
// only shape its request and response.

type PlanRouteReq struct {
	Start   model.GeoPoint   `json:"start" validate:"required"`
	Targets []string         `json:"targets"` // target ids; resolved to locations server-side
	Points  []model.GeoPoint `json:"points"`  // raw waypoints, used when targets is empty
}

type Waypoint struct {
	Order          int             `json:"order"`
	TargetID       string          `json:"targetId,omitempty"`
	Location       model.GeoPoint  `json:"location"`
	LegDistanceM   float64         `json:"legDistanceM"`
	LegDurationSec float64         `json:"legDurationSec"`
}

type PlanRouteResp struct {
	Waypoints        []Waypoint `json:"waypoints"`
	TotalDistanceM   float64    `json:"totalDistanceM"`
	TotalDurationSec float64    `json:"totalDurationSec"`
}
