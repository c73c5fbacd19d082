package board

import (
	"fmt"
	"time"
)

type Station struct {
	Name        string
	Naptan      string
	StopPointID string
}

var WembleyPark = Station{
	Name:        "Wembley Park",
	Naptan:      "940GZZLUWYP",
	StopPointID: "940GZZLUWYP",
}

type Arrival struct {
	ID            string
	LineID        string
	Platform      string
	Direction     string
	Destination   string
	ArrivalTime   time.Time
	TimeToStation time.Duration
	Index         int
}

type StationStatus struct {
	StationID     string
	CrowdingLevel int
	LastUpdated   time.Time
}

// formatETA renders time-to-station the way platform boards do: whole
// minutes with a leading tilde, or "Now" inside a minute.
func formatETA(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes <= 0 {
		return "Now"
	}
	return fmt.Sprintf("~%dm", minutes)
}

// rotation keeps the non-primary arrivals per line and cycles through them,
// moving the returned arrival to the back of its queue.
type rotation struct {
	queues map[string][]Arrival
}

func newRotation() *rotation {
	return &rotation{queues: map[string][]Arrival{}}
}

func (r *rotation) set(lineID string, arrivals []Arrival) {
	r.queues[lineID] = arrivals
}

func (r *rotation) next(lineID string) (Arrival, bool) {
	q := r.queues[lineID]
	if len(q) == 0 {
		return Arrival{}, false
	}
	head := q[0]
	r.queues[lineID] = append(q[1:], head)
	return head, true
}
