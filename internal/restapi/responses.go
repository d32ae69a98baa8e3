package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/models"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/transit"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request, text string) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusNotFound)

	if text == "" {
		text = "resource not found"
	}
	response := models.ResponseModel{
		Code:        http.StatusNotFound,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     2,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

// sendQueryError renders expected misses as 404 envelopes and everything
// else as a 500. Not-found outcomes are ordinary results of a well-formed
// question and must never surface as server errors.
func (api *RestAPI) sendQueryError(w http.ResponseWriter, r *http.Request, err error) {
	if transit.IsNotFound(err) {
		api.sendNotFound(w, r, err.Error())
		return
	}
	if errors.Is(err, transit.ErrNoDataset) {
		api.serviceUnavailableResponse(w, r)
		return
	}
	api.serverErrorResponse(w, r, err)
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
