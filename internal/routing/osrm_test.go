package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anishanishy81-byte/poverse-sub003/model"
)

func TestPlanTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/trip/v1/driving/")
		assert.Equal(t, "first", r.URL.Query().Get("source"))
		w.Write([]byte(`{
			"code": "Ok",
			"trips": [{
				"distance": 1500,
				"duration": 180,
				"legs": [
					{"distance": 1000, "duration": 120},
					{"distance": 500, "duration": 60}
				]
			}],
			"waypoints": [
				{"waypoint_index": 0},
				{"waypoint_index": 2},
				{"waypoint_index": 1}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	trip, err := c.PlanTrip(context.Background(), []model.GeoPoint{
		{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}, {Lat: 2, Lng: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, trip.TotalDistanceM)
	assert.Equal(t, 180.0, trip.TotalDurationSec)
	// Input point 1 was moved to the last stop, point 2 to the middle.
	assert.Equal(t, []int{0, 2, 1}, trip.Order)
	require.Len(t, trip.Legs, 2)
	assert.Equal(t, 1000.0, trip.Legs[0].DistanceM)
}

func TestPlanTripErrors(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		c := NewClient("http://localhost:0")
		_, err := c.PlanTrip(context.Background(), []model.GeoPoint{{Lat: 1, Lng: 1}})
		assert.Error(t, err)
	})

	t.Run("routing failure code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"code": "NoTrips"}`))
		}))
		defer srv.Close()
		c := NewClient(srv.URL)
		_, err := c.PlanTrip(context.Background(), []model.GeoPoint{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}})
		assert.ErrorContains(t, err, "NoTrips")
	})

	t.Run("http error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()
		c := NewClient(srv.URL)
		_, err := c.PlanTrip(context.Background(), []model.GeoPoint{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}})
		assert.ErrorContains(t, err, "status 502")
	})
}
