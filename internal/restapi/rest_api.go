package restapi

import (
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/app"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/transit"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}

func (api *RestAPI) engine() *transit.Engine {
	return api.GtfsManager.Engine()
}
