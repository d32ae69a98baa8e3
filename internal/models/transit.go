package models

import "github.com/sikandarshahbaz-1996/go-transit-mcp/internal/transit"

// StationModel is one canonical stop as rendered to API clients.
type StationModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Zone string `json:"zone,omitempty"`
}

// NewStationModel converts a resolved stop to its API shape.
func NewStationModel(stop transit.Stop) StationModel {
	return StationModel{ID: stop.ID, Name: stop.Name, Zone: stop.Zone}
}

// TripPlanData is the data payload for the trip-plan endpoint.
type TripPlanData struct {
	From      StationModel             `json:"from"`
	To        StationModel             `json:"to"`
	ServiceID string                   `json:"serviceId"`
	Trips     []transit.ItineraryEntry `json:"trips"`
}

// NewTripPlanData builds the payload from an engine trip plan.
func NewTripPlanData(plan transit.TripPlan, entries []transit.ItineraryEntry) TripPlanData {
	return TripPlanData{
		From:      NewStationModel(plan.From),
		To:        NewStationModel(plan.To),
		ServiceID: plan.ServiceID,
		Trips:     entries,
	}
}

// FareData is the data payload for the fare endpoint.
type FareData struct {
	Entry transit.FareQuote `json:"entry"`
}

// StationsData is the data payload for the stations endpoint.
type StationsData struct {
	List []StationModel `json:"list"`
}

// NewStationsData builds the payload from the loaded stop list.
func NewStationsData(stops []transit.Stop) StationsData {
	list := make([]StationModel, 0, len(stops))
	for _, stop := range stops {
		list = append(list, NewStationModel(stop))
	}
	return StationsData{List: list}
}
