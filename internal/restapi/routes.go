package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Routes returns the fully wired handler: router plus request logging.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/transit/trip-plan.json", api.tripPlanHandler)
	router.HandlerFunc(http.MethodGet, "/api/transit/fare.json", api.fareHandler)
	router.HandlerFunc(http.MethodGet, "/api/transit/stations.json", api.stationsHandler)
	router.HandlerFunc(http.MethodGet, "/api/transit/current-time.json", api.currentTimeHandler)

	return NewRequestLoggingMiddleware(api.Logger)(router)
}
