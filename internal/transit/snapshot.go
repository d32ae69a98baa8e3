package transit

import "time"

// Snapshot is one fully-built, immutable view of a loaded dataset: the stop
// index, the service calendar, the fare table and the stop-time source backing
// the trip join. Snapshots are never mutated after construction; reloads build
// a new one off-line and swap it in whole.
type Snapshot struct {
	Stops       []Stop
	Index       *StopIndex
	ServiceDays []ServiceDay
	Fares       *FareTable
	StopTimes   StopTimeSource
	LoadedAt    time.Time
}
