package restapi

import (
	"encoding/json"
	"net/http"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/models"
)

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "error", err, "path", r.URL.Path)

	response := models.ResponseModel{
		Code:        http.StatusInternalServerError,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "internal server error",
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if encoderErr := json.NewEncoder(w).Encode(response); encoderErr != nil {
		api.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}

func (api *RestAPI) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request) {
	response := models.ResponseModel{
		Code:        http.StatusServiceUnavailable,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "schedule data not loaded yet",
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode service unavailable response", "error", err)
	}
}

// missingParamResponse sends a 400 Bad Request response naming the absent
// query parameter.
func (api *RestAPI) missingParamResponse(w http.ResponseWriter, r *http.Request, param string) {
	response := models.ResponseModel{
		Code:        http.StatusBadRequest,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "missing required parameter: " + param,
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode bad request response", "error", err)
	}
}
