package gtfsdb

// Stop represents a transit stop or station in the schedule dataset
type Stop struct {
	ID     string // stop_id
	Name   string // stop_name
	ZoneID string // zone_id
}

// ServiceDate represents one calendar date on which a service pattern operates
type ServiceDate struct {
	Date      string // date (YYYYMMDD)
	ServiceID string // service_id
}

// Trip represents a single scheduled vehicle run
type Trip struct {
	ID          string // trip_id
	ServiceID   string // service_id
	DirectionID int64  // direction_id
}

// StopTime represents a vehicle departure at a specific stop within a trip.
// DepartureTime is stored as seconds since midnight; GTFS allows values past
// 24:00:00 for trips that run over midnight.
type StopTime struct {
	TripID        string // trip_id
	StopID        string // stop_id
	DepartureTime int64  // departure_time (seconds)
	StopSequence  int64  // stop_sequence
}

// FareAttribute represents a priced origin-destination zone pair
type FareAttribute struct {
	FareID       string  // fare_id ("fromZone-toZone")
	Price        float64 // price
	CurrencyType string  // currency_type
}
