package restapi

import (
	"net/http"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/models"
)

// stationsHandler lists every stop in the loaded dataset.
func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	stops, err := api.engine().Stations()
	if err != nil {
		api.sendQueryError(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(models.NewStationsData(stops)))
}
