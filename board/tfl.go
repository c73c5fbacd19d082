package board

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Source feeds the board with live data.
type Source interface {
	Arrivals(ctx context.Context, station Station) (map[string][]Arrival, error)
	Crowding(ctx context.Context, station Station) (StationStatus, error)
}

const tflBaseURL = "https://api.tfl.gov.uk"

// Client queries the TfL unified API.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

func NewClient(log zerolog.Logger) *Client {
	return &Client{
		base: tflBaseURL,
		http: &http.Client{Timeout: 10 * time.Second},
		log:  log,
	}
}

type arrivalResponse struct {
	ID              string `json:"id"`
	LineID          string `json:"lineId"`
	PlatformName    string `json:"platformName"`
	Direction       string `json:"direction"`
	DestinationName string `json:"destinationName"`
	ExpectedArrival string `json:"expectedArrival"`
	TimeToStation   int    `json:"timeToStation"`
}

// Arrivals fetches outbound arrivals for the station, grouped by line and
// ordered soonest first.
func (c *Client) Arrivals(ctx context.Context, station Station) (map[string][]Arrival, error) {
	url := fmt.Sprintf("%s/Line/metropolitan,jubilee/Arrivals/%s?direction=outbound", c.base, station.StopPointID)
	var raw []arrivalResponse
	if err := c.get(ctx, url, &raw); err != nil {
		return nil, fmt.Errorf("arrivals for %s: %w", station.Name, err)
	}

	byLine := map[string][]Arrival{}
	for _, r := range raw {
		arrivalTime, err := time.Parse(time.RFC3339, r.ExpectedArrival)
		if err != nil {
			c.log.Warn().Str("id", r.ID).Str("expected", r.ExpectedArrival).Msg("unparseable arrival time")
			continue
		}
		byLine[r.LineID] = append(byLine[r.LineID], Arrival{
			ID:            r.ID,
			LineID:        r.LineID,
			Platform:      r.PlatformName,
			Direction:     r.Direction,
			Destination:   r.DestinationName,
			ArrivalTime:   arrivalTime.UTC(),
			TimeToStation: time.Duration(r.TimeToStation) * time.Second,
		})
	}
	for line, arrivals := range byLine {
		sort.Slice(arrivals, func(i, j int) bool {
			return arrivals[i].TimeToStation < arrivals[j].TimeToStation
		})
		for i := range arrivals {
			arrivals[i].Index = i
		}
		byLine[line] = arrivals
	}
	return byLine, nil
}

type crowdingResponse struct {
	PercentageOfBaseline float64 `json:"percentageOfBaseline"`
	TimeUTC              string  `json:"timeUtc"`
}

// Crowding fetches the live crowding level for the station.
func (c *Client) Crowding(ctx context.Context, station Station) (StationStatus, error) {
	url := fmt.Sprintf("%s/crowding/%s/Live", c.base, station.Naptan)
	var raw crowdingResponse
	if err := c.get(ctx, url, &raw); err != nil {
		return StationStatus{}, fmt.Errorf("crowding for %s: %w", station.Name, err)
	}
	status := StationStatus{
		StationID:     station.Naptan,
		CrowdingLevel: scaleCrowding(raw.PercentageOfBaseline),
	}
	if updated, err := time.Parse(time.RFC3339, raw.TimeUTC); err == nil {
		status.LastUpdated = updated.UTC()
	}
	return status, nil
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// scaleCrowding converts the percentage-of-baseline figure into a small
// integer level, 1 for empty up to 10 at peak. The gauge clamps whatever it
// gets, so levels above its icon count just mean "full".
func scaleCrowding(percentageOfBaseline float64) int {
	score := 1 + percentageOfBaseline*11
	score = math.Max(1, math.Min(10, score))
	return int(math.Round(score))
}
