package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anishanishy81-byte/poverse-sub003/model"
)

// Client talks to an OSRM-compatible trip endpoint. Waypoint ordering is
// whatever the service returns; no optimization happens here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Leg is one hop of the planned trip.
type Leg struct {
	DistanceM   float64
	DurationSec float64
}

// Trip is the ordered result: Order[i] is the index into the input points
// of the i-th stop.
type Trip struct {
	Order            []int
	Legs             []Leg
	TotalDistanceM   float64
	TotalDurationSec float64
}

type osrmResponse struct {
	Code  string `json:"code"`
	Trips []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Legs     []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"legs"`
	} `json:"trips"`
	Waypoints []struct {
		WaypointIndex int `json:"waypoint_index"`
	} `json:"waypoints"`
}

// PlanTrip asks the service for a trip over the given points, starting from
// the first one.
func (c *Client) PlanTrip(ctx context.Context, points []model.GeoPoint) (*Trip, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 points, got %d", len(points))
	}

	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("%f,%f", p.Lng, p.Lat)
	}
	url := fmt.Sprintf("%s/trip/v1/driving/%s?source=first&roundtrip=false",
		c.baseURL, strings.Join(coords, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing request: status %d", resp.StatusCode)
	}

	var out osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode routing response: %w", err)
	}
	if out.Code != "Ok" || len(out.Trips) == 0 {
		return nil, fmt.Errorf("routing failed: %s", out.Code)
	}

	trip := &Trip{
		Order:            make([]int, len(points)),
		TotalDistanceM:   out.Trips[0].Distance,
		TotalDurationSec: out.Trips[0].Duration,
	}
	// waypoints[i].waypoint_index is input point i's position in the trip.
	for i, wp := range out.Waypoints {
		if wp.WaypointIndex < len(trip.Order) {
			trip.Order[wp.WaypointIndex] = i
		}
	}
	for _, leg := range out.Trips[0].Legs {
		trip.Legs = append(trip.Legs, Leg{DistanceM: leg.Distance, DurationSec: leg.Duration})
	}
	return trip, nil
}
