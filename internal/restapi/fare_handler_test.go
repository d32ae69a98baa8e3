package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFareHandler(t *testing.T) {
	api := newTestAPI(t)

	rec, envelope := serveRequest(t, api, "/api/transit/fare.json?from=milton&to=union")
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, "10-02", entry["fareId"])
	assert.Equal(t, 9.55, entry["price"])
	assert.Equal(t, "CAD", entry["currency"])
	assert.Equal(t, "10", entry["fromZone"])
	assert.Equal(t, "02", entry["toZone"])
}

func TestFareHandlerNoReverseFare(t *testing.T) {
	api := newTestAPI(t)

	// Only the Milton-to-Union zone pair is priced.
	rec, _ := serveRequest(t, api, "/api/transit/fare.json?from=union&to=milton")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFareHandlerMissingParams(t *testing.T) {
	api := newTestAPI(t)

	rec, _ := serveRequest(t, api, "/api/transit/fare.json?from=milton")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serveRequest(t, api, "/api/transit/fare.json?to=union")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
