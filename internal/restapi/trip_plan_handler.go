package restapi

import (
	"net/http"
	"time"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/models"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/transit"
)

// tripPlanHandler answers "when do trains run from A to B on that weekday".
// Required query parameters: when (a weekday name), from and to (free-form
// location strings).
func (api *RestAPI) tripPlanHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	when := query.Get("when")
	from := query.Get("from")
	to := query.Get("to")

	switch {
	case when == "":
		api.missingParamResponse(w, r, "when")
		return
	case from == "":
		api.missingParamResponse(w, r, "from")
		return
	case to == "":
		api.missingParamResponse(w, r, "to")
		return
	}

	plan, err := api.engine().PlanTrip(r.Context(), when, from, to, time.Now())
	if err != nil {
		api.sendQueryError(w, r, err)
		return
	}

	entries := transit.Enrich(plan.Entries, api.GtfsManager.RealtimeOverlay())

	api.sendResponse(w, r, models.NewOKResponse(models.NewTripPlanData(plan, entries)))
}
