package restapi

import (
	"net/http"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/models"
)

// fareHandler answers "how much does it cost to travel from A to B".
// Required query parameters: from and to (free-form location strings).
func (api *RestAPI) fareHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")

	switch {
	case from == "":
		api.missingParamResponse(w, r, "from")
		return
	case to == "":
		api.missingParamResponse(w, r, "to")
		return
	}

	quote, err := api.engine().Fare(from, to)
	if err != nil {
		api.sendQueryError(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(models.FareData{Entry: quote}))
}
