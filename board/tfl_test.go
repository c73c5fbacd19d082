package board

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arrivalsBody = `[
  {"id":"2","lineId":"jubilee","platformName":"Platform 2","direction":"outbound",
   "destinationName":"Stanmore","expectedArrival":"2026-08-23T10:09:00Z","timeToStation":540},
  {"id":"1","lineId":"jubilee","platformName":"Platform 2","direction":"outbound",
   "destinationName":"Stanmore","expectedArrival":"2026-08-23T10:04:00Z","timeToStation":240},
  {"id":"3","lineId":"metropolitan","platformName":"Platform 4","direction":"outbound",
   "destinationName":"Aldgate","expectedArrival":"2026-08-23T10:06:00Z","timeToStation":360}
]`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(zerolog.Nop())
	c.base = srv.URL
	return c
}

func TestArrivalsGroupedAndSorted(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/Line/metropolitan,jubilee/Arrivals/940GZZLUWYP")
		assert.Equal(t, "outbound", r.URL.Query().Get("direction"))
		w.Write([]byte(arrivalsBody))
	})

	byLine, err := c.Arrivals(context.Background(), WembleyPark)
	require.NoError(t, err)
	require.Len(t, byLine["jubilee"], 2)

	first := byLine["jubilee"][0]
	assert.Equal(t, "1", first.ID, "soonest arrival sorts first")
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 4*time.Minute, first.TimeToStation)
	assert.Equal(t, 1, byLine["jubilee"][1].Index)
	assert.Equal(t, "Aldgate", byLine["metropolitan"][0].Destination)
}

func TestArrivalsSkipsUnparseableTimestamps(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"x","lineId":"jubilee","destinationName":"Stanmore",
		  "expectedArrival":"not-a-time","timeToStation":60}]`))
	})

	byLine, err := c.Arrivals(context.Background(), WembleyPark)
	require.NoError(t, err)
	assert.Empty(t, byLine["jubilee"])
}

func TestArrivalsErrorStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid station"}`, http.StatusNotFound)
	})

	_, err := c.Arrivals(context.Background(), WembleyPark)
	assert.ErrorContains(t, err, "404")
}

func TestCrowding(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crowding/940GZZLUWYP/Live", r.URL.Path)
		w.Write([]byte(`{"percentageOfBaseline":0.35,"timeUtc":"2026-08-23T10:00:00Z"}`))
	})

	status, err := c.Crowding(context.Background(), WembleyPark)
	require.NoError(t, err)
	assert.Equal(t, "940GZZLUWYP", status.StationID)
	assert.Equal(t, 5, status.CrowdingLevel)
	assert.Equal(t, time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC), status.LastUpdated)
}

func TestScaleCrowding(t *testing.T) {
	assert.Equal(t, 1, scaleCrowding(0))
	assert.Equal(t, 10, scaleCrowding(1))
	assert.Equal(t, 10, scaleCrowding(2.5))
	assert.Equal(t, 5, scaleCrowding(0.35))
}
