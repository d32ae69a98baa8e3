package transit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/gtfsdb"
)

// fakeSource serves trips and stop times from memory, mirroring the database
// client's contract: trips filtered by service and direction, stop times
// filtered by the requested trip and stop sets.
type fakeSource struct {
	trips     []gtfsdb.Trip
	stopTimes []gtfsdb.StopTime
}

func (f *fakeSource) TripIDsForService(_ context.Context, serviceID string, directionID int) ([]string, error) {
	var ids []string
	for _, trip := range f.trips {
		if trip.ServiceID == serviceID && trip.DirectionID == int64(directionID) {
			ids = append(ids, trip.ID)
		}
	}
	return ids, nil
}

func (f *fakeSource) StopTimesForTrips(_ context.Context, tripIDs []string, stopIDs []string) ([]gtfsdb.StopTime, error) {
	wantTrip := make(map[string]struct{}, len(tripIDs))
	for _, id := range tripIDs {
		wantTrip[id] = struct{}{}
	}
	wantStop := make(map[string]struct{}, len(stopIDs))
	for _, id := range stopIDs {
		wantStop[id] = struct{}{}
	}

	var rows []gtfsdb.StopTime
	for _, st := range f.stopTimes {
		if _, ok := wantTrip[st.TripID]; !ok {
			continue
		}
		if _, ok := wantStop[st.StopID]; !ok {
			continue
		}
		rows = append(rows, st)
	}
	return rows, nil
}

func TestFindTripsSortsByDepartureThenTripID(t *testing.T) {
	src := &fakeSource{
		trips: []gtfsdb.Trip{
			{ID: "B200", ServiceID: "SVC1", DirectionID: 0},
			{ID: "A100", ServiceID: "SVC1", DirectionID: 0},
			{ID: "C300", ServiceID: "SVC1", DirectionID: 0},
		},
		stopTimes: []gtfsdb.StopTime{
			{TripID: "B200", StopID: "ML", DepartureTime: 7*3600 + 600},
			{TripID: "B200", StopID: "UN", DepartureTime: 8 * 3600},
			{TripID: "A100", StopID: "ML", DepartureTime: 7*3600 + 600},
			{TripID: "A100", StopID: "UN", DepartureTime: 8*3600 + 300},
			{TripID: "C300", StopID: "ML", DepartureTime: 6 * 3600},
			{TripID: "C300", StopID: "UN", DepartureTime: 7 * 3600},
		},
	}

	entries, err := FindTrips(context.Background(), src, "SVC1", "ML", "UN")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// C300 departs first; A100 and B200 tie on departure and order by trip id.
	assert.Equal(t, "C300", entries[0].TripID)
	assert.Equal(t, "A100", entries[1].TripID)
	assert.Equal(t, "B200", entries[2].TripID)

	assert.Equal(t, "06:00:00", entries[0].DepartureTime)
	assert.Equal(t, "07:00:00", entries[0].ArrivalTime)
	assert.Equal(t, "07:10:00", entries[1].DepartureTime)
}

func TestFindTripsRequiresBothStops(t *testing.T) {
	src := &fakeSource{
		trips: []gtfsdb.Trip{
			{ID: "T1", ServiceID: "SVC1", DirectionID: 0},
			{ID: "T2", ServiceID: "SVC1", DirectionID: 0},
		},
		stopTimes: []gtfsdb.StopTime{
			{TripID: "T1", StopID: "ML", DepartureTime: 7 * 3600},
			{TripID: "T2", StopID: "ML", DepartureTime: 7 * 3600},
			{TripID: "T2", StopID: "UN", DepartureTime: 8 * 3600},
		},
	}

	entries, err := FindTrips(context.Background(), src, "SVC1", "ML", "UN")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "T2", entries[0].TripID)
}

func TestFindTripsExcludesWrongTravelDirection(t *testing.T) {
	// T1 reaches UN before ML, so it is the return leg for this query and
	// must not qualify even though it serves both stops.
	src := &fakeSource{
		trips: []gtfsdb.Trip{
			{ID: "T1", ServiceID: "SVC1", DirectionID: 0},
			{ID: "T2", ServiceID: "SVC1", DirectionID: 0},
		},
		stopTimes: []gtfsdb.StopTime{
			{TripID: "T1", StopID: "ML", DepartureTime: 8 * 3600},
			{TripID: "T1", StopID: "UN", DepartureTime: 7*3600 + 50*60},
			{TripID: "T2", StopID: "ML", DepartureTime: 9 * 3600},
			{TripID: "T2", StopID: "UN", DepartureTime: 10 * 3600},
		},
	}

	entries, err := FindTrips(context.Background(), src, "SVC1", "ML", "UN")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "T2", entries[0].TripID)
}

func TestFindTripsFallsBackToDirectionOne(t *testing.T) {
	src := &fakeSource{
		trips: []gtfsdb.Trip{
			{ID: "R1", ServiceID: "SVC1", DirectionID: 1},
		},
		stopTimes: []gtfsdb.StopTime{
			{TripID: "R1", StopID: "UN", DepartureTime: 16 * 3600},
			{TripID: "R1", StopID: "ML", DepartureTime: 17 * 3600},
		},
	}

	entries, err := FindTrips(context.Background(), src, "SVC1", "UN", "ML")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "R1", entries[0].TripID)
}

func TestFindTripsDirectionPoolsNeverMerge(t *testing.T) {
	src := &fakeSource{
		trips: []gtfsdb.Trip{
			{ID: "D0", ServiceID: "SVC1", DirectionID: 0},
			{ID: "D1", ServiceID: "SVC1", DirectionID: 1},
		},
		stopTimes: []gtfsdb.StopTime{
			{TripID: "D0", StopID: "ML", DepartureTime: 7 * 3600},
			{TripID: "D0", StopID: "UN", DepartureTime: 8 * 3600},
			{TripID: "D1", StopID: "ML", DepartureTime: 6 * 3600},
			{TripID: "D1", StopID: "UN", DepartureTime: 7 * 3600},
		},
	}

	// Direction 0 produced results, so the earlier direction-1 trip is never
	// considered.
	entries, err := FindTrips(context.Background(), src, "SVC1", "ML", "UN")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "D0", entries[0].TripID)
}

func TestFindTripsNoTrips(t *testing.T) {
	src := &fakeSource{}

	_, err := FindTrips(context.Background(), src, "SVC1", "ML", "UN")
	assert.ErrorIs(t, err, ErrNoTrips)
	assert.True(t, IsNotFound(err))
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{7*3600 + 10*60, "07:10:00"},
		{13*3600 + 5*60 + 9, "13:05:09"},
		{25 * 3600, "25:00:00"}, // past-midnight trips keep rolling hours
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.seconds))
	}
}
