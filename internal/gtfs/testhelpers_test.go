package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildFeedZip assembles a zipped feed from file name / content pairs.
func buildFeedZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

// writeFeedFile writes a zipped feed to a temp file and returns its path.
func writeFeedFile(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "feed.zip")
	require.NoError(t, os.WriteFile(path, buildFeedZip(t, files), 0o644))
	return path
}

// testFeedFiles is a minimal but complete feed: one line, two stops, one
// service date, two trips and a priced zone pair.
func testFeedFiles() map[string]string {
	return map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n" +
			"GO,GO Transit,https://example.com,America/Toronto\n",
		"routes.txt": "route_id,agency_id,route_type\n" +
			"LW,GO,2\n",
		"stops.txt": "stop_id,stop_name,zone_id\n" +
			"UN,Union Station,02\n" +
			"ML,Milton GO,10\n",
		"calendar_dates.txt": "service_id,date,exception_type\n" +
			"20250910,20250910,1\n",
		"trips.txt": "route_id,service_id,trip_id,direction_id\n" +
			"LW,20250910,T1,0\n" +
			"LW,20250910,T2,0\n",
		"stop_times.txt": "trip_id,stop_id,arrival_time,departure_time,stop_sequence\n" +
			"T1,ML,07:00:00,07:00:00,1\n" +
			"T1,UN,08:00:00,08:00:00,2\n" +
			"T2,ML,09:00:00,09:00:00,1\n" +
			"T2,UN,10:00:00,10:00:00,2\n",
		"fare_attributes.txt": "fare_id,price,currency_type\n" +
			"10-02,9.55,CAD\n",
	}
}
