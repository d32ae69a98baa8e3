package restapi

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/app"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/appconf"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/gtfs"
)

// The fixture uses a far-future service date so "next Wednesday" queries
// resolve the same way regardless of when the tests run.
const fixtureServiceDate = "20990107"

func testFeedPath(t *testing.T) string {
	t.Helper()

	files := map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n" +
			"GO,GO Transit,https://example.com,America/Toronto\n",
		"routes.txt": "route_id,agency_id,route_type\n" +
			"LW,GO,2\n",
		"stops.txt": "stop_id,stop_name,zone_id\n" +
			"UN,Union Station,02\n" +
			"ML,Milton GO,10\n",
		"calendar_dates.txt": "service_id,date,exception_type\n" +
			fixtureServiceDate + "," + fixtureServiceDate + ",1\n",
		"trips.txt": "route_id,service_id,trip_id,direction_id\n" +
			"LW," + fixtureServiceDate + ",T1,0\n",
		"stop_times.txt": "trip_id,stop_id,arrival_time,departure_time,stop_sequence\n" +
			"T1,ML,07:00:00,07:00:00,1\n" +
			"T1,UN,08:00:00,08:00:00,2\n",
		"fare_attributes.txt": "fare_id,price,currency_type\n" +
			"10-02,9.55,CAD\n",
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "feed.zip")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func newTestAPI(t *testing.T) *RestAPI {
	t.Helper()

	manager, err := gtfs.InitManager(gtfs.Config{
		StaticURL: testFeedPath(t),
		DBPath:    ":memory:",
		Env:       appconf.Test,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	return NewRestAPI(&app.Application{
		Config:      app.Config{Env: "test"},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		GtfsManager: manager,
	})
}

// serveRequest runs a GET against the fully wired router and decodes the
// envelope.
func serveRequest(t *testing.T, api *RestAPI, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	api.Routes().ServeHTTP(rec, req)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &envelope))

	return rec, envelope
}
