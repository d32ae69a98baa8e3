package transit

import "errors"

// Expected query misses. These are ordinary outcomes, not failures: every
// query-path function reports a miss through one of these sentinels and the
// caller decides how to render it.
var (
	// ErrLocationNotFound means a free-form location string has no canonical stop.
	ErrLocationNotFound = errors.New("location not found")

	// ErrServiceNotFound means no future service date matches the requested weekday.
	ErrServiceNotFound = errors.New("no service found for requested day")

	// ErrNoTrips means both directions were exhausted without a qualifying trip.
	ErrNoTrips = errors.New("no trips found between stops")

	// ErrFareNotFound means the zone pair has no fare row.
	ErrFareNotFound = errors.New("no fare found for zone pair")

	// ErrNoDataset means no schedule snapshot has been published yet.
	ErrNoDataset = errors.New("no schedule dataset loaded")
)

// IsNotFound reports whether err is one of the expected query misses, as
// opposed to an operational failure such as a database error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLocationNotFound) ||
		errors.Is(err, ErrServiceNotFound) ||
		errors.Is(err, ErrNoTrips) ||
		errors.Is(err, ErrFareNotFound)
}
