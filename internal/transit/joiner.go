package transit

import (
	"context"
	"fmt"
	"sort"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/gtfsdb"
)

// StopTimeSource supplies trip and stop-time rows for the join. The
// stop-time table can be two to three orders of magnitude larger than any
// other table, so implementations must support reading only the rows for a
// known trip-id and stop-id set rather than the full table; *gtfsdb.Client
// satisfies this with index-assisted queries.
type StopTimeSource interface {
	TripIDsForService(ctx context.Context, serviceID string, directionID int) ([]string, error)
	StopTimesForTrips(ctx context.Context, tripIDs []string, stopIDs []string) ([]gtfsdb.StopTime, error)
}

// ItineraryEntry is one qualifying trip between two resolved stops. Times
// are rendered as HH:MM:SS; the seconds fields carry the raw schedule values
// used for ordering and realtime adjustment. The realtime fields are zero
// unless an overlay has been applied.
type ItineraryEntry struct {
	TripID           string   `json:"tripId"`
	From             string   `json:"from"`
	To               string   `json:"to"`
	DepartureTime    string   `json:"departureTime"`
	ArrivalTime      string   `json:"arrivalTime"`
	DepartureSeconds int64    `json:"-"`
	ArrivalSeconds   int64    `json:"-"`
	DelaySeconds     int      `json:"delaySeconds,omitempty"`
	Cancelled        bool     `json:"cancelled,omitempty"`
	Alerts           []string `json:"alerts,omitempty"`
}

// FindTrips returns the time-sorted itinerary between two resolved stops for
// a resolved service. Direction 0 is evaluated first and direction 1 only if
// it produced nothing; the two pools are never merged. A trip qualifies only
// when it serves both stops and departs the origin before the destination,
// which excludes the return-direction portion of loop trips.
func FindTrips(ctx context.Context, src StopTimeSource, serviceID, fromStopID, toStopID string) ([]ItineraryEntry, error) {
	for direction := 0; direction <= 1; direction++ {
		entries, err := tripsForDirection(ctx, src, serviceID, direction, fromStopID, toStopID)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			sort.Slice(entries, func(i, j int) bool {
				if entries[i].DepartureSeconds == entries[j].DepartureSeconds {
					return entries[i].TripID < entries[j].TripID
				}
				return entries[i].DepartureSeconds < entries[j].DepartureSeconds
			})
			return entries, nil
		}
	}

	return nil, ErrNoTrips
}

func tripsForDirection(ctx context.Context, src StopTimeSource, serviceID string, direction int, fromStopID, toStopID string) ([]ItineraryEntry, error) {
	tripIDs, err := src.TripIDsForService(ctx, serviceID, direction)
	if err != nil {
		return nil, fmt.Errorf("error listing trips for service %s direction %d: %w", serviceID, direction, err)
	}
	if len(tripIDs) == 0 {
		return nil, nil
	}

	rows, err := src.StopTimesForTrips(ctx, tripIDs, []string{fromStopID, toStopID})
	if err != nil {
		return nil, fmt.Errorf("error scanning stop times: %w", err)
	}

	type tripTimes struct {
		departure, arrival int64
		hasFrom, hasTo     bool
	}

	times := make(map[string]*tripTimes)
	for _, row := range rows {
		tt := times[row.TripID]
		if tt == nil {
			tt = &tripTimes{}
			times[row.TripID] = tt
		}
		switch row.StopID {
		case fromStopID:
			tt.departure = row.DepartureTime
			tt.hasFrom = true
		case toStopID:
			tt.arrival = row.DepartureTime
			tt.hasTo = true
		}
	}

	var entries []ItineraryEntry
	for tripID, tt := range times {
		if !tt.hasFrom || !tt.hasTo {
			continue
		}
		if tt.departure >= tt.arrival {
			continue
		}
		entries = append(entries, ItineraryEntry{
			TripID:           tripID,
			DepartureTime:    FormatSeconds(tt.departure),
			ArrivalTime:      FormatSeconds(tt.arrival),
			DepartureSeconds: tt.departure,
			ArrivalSeconds:   tt.arrival,
		})
	}

	return entries, nil
}

// FormatSeconds renders seconds since midnight as HH:MM:SS. Hours may exceed
// 24 for trips running past midnight, matching GTFS time conventions.
func FormatSeconds(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
