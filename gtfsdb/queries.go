package gtfsdb

import (
	"context"
	"fmt"
	"strings"
)

// sqlite limits the number of bound variables per statement; stop-time scans
// over large trip-id sets are chunked to stay under it.
const tripIDChunkSize = 500

// TripIDsForService returns the ids of all trips operating under the given
// service id in the given direction.
func (c *Client) TripIDsForService(ctx context.Context, serviceID string, directionID int) ([]string, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT trip_id FROM trips
		WHERE service_id = ? AND direction_id = ?
		ORDER BY trip_id;
	`, serviceID, directionID)
	if err != nil {
		return nil, fmt.Errorf("error querying trips: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var tripIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning trip id: %w", err)
		}
		tripIDs = append(tripIDs, id)
	}

	return tripIDs, rows.Err()
}

// StopTimesForTrips returns the stop-time rows belonging to the given trip-id
// set, restricted to the given stop ids. Rows within a trip come back in
// stop_sequence order. The stop_times table can be orders of magnitude larger
// than every other table, so only rows matching both filters are ever read.
func (c *Client) StopTimesForTrips(ctx context.Context, tripIDs []string, stopIDs []string) ([]StopTime, error) {
	if len(tripIDs) == 0 || len(stopIDs) == 0 {
		return nil, nil
	}

	var result []StopTime
	for start := 0; start < len(tripIDs); start += tripIDChunkSize {
		end := start + tripIDChunkSize
		if end > len(tripIDs) {
			end = len(tripIDs)
		}

		chunk, err := c.stopTimesForTripChunk(ctx, tripIDs[start:end], stopIDs)
		if err != nil {
			return nil, err
		}
		result = append(result, chunk...)
	}

	return result, nil
}

func (c *Client) stopTimesForTripChunk(ctx context.Context, tripIDs []string, stopIDs []string) ([]StopTime, error) {
	query := fmt.Sprintf(`
		SELECT trip_id, stop_id, departure_time, stop_sequence FROM stop_times
		WHERE trip_id IN (%s) AND stop_id IN (%s)
		ORDER BY trip_id, stop_sequence;
	`, placeholders(len(tripIDs)), placeholders(len(stopIDs)))

	args := make([]interface{}, 0, len(tripIDs)+len(stopIDs))
	for _, id := range tripIDs {
		args = append(args, id)
	}
	for _, id := range stopIDs {
		args = append(args, id)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying stop times: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var stopTimes []StopTime
	for rows.Next() {
		var st StopTime
		if err := rows.Scan(&st.TripID, &st.StopID, &st.DepartureTime, &st.StopSequence); err != nil {
			return nil, fmt.Errorf("error scanning stop time: %w", err)
		}
		stopTimes = append(stopTimes, st)
	}

	return stopTimes, rows.Err()
}

// TableCounts returns the row count of every schedule table, for statistics logging.
func (c *Client) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, table := range []string{"stops", "calendar_dates", "trips", "stop_times", "fare_attributes"} {
		var count int64
		err := c.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+";").Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("error counting rows in %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
