package transit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// TripPlan is the result of a full trip query: the resolved endpoints, the
// service date's id and the qualifying trips in departure order.
type TripPlan struct {
	From      Stop             `json:"-"`
	To        Stop             `json:"-"`
	ServiceID string           `json:"serviceId"`
	Entries   []ItineraryEntry `json:"entries"`
}

// Engine runs queries against the most recently published snapshot. A query
// captures the snapshot once at its start and uses it throughout, so a reload
// finishing mid-query never splits one request across two datasets.
type Engine struct {
	mu     sync.RWMutex
	snap   *Snapshot
	logger *slog.Logger
}

// NewEngine returns an engine with no dataset loaded. Queries report
// ErrNoDataset until the first Publish.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Publish atomically replaces the current snapshot. In-flight queries keep
// the snapshot they started with.
func (e *Engine) Publish(snap *Snapshot) {
	e.mu.Lock()
	e.snap = snap
	e.mu.Unlock()

	if snap != nil {
		e.logger.Info("published dataset snapshot",
			slog.Int("stops", len(snap.Stops)),
			slog.Int("serviceDays", len(snap.ServiceDays)),
			slog.Int("farePairs", snap.Fares.Len()),
			slog.Time("loadedAt", snap.LoadedAt))
	}
}

func (e *Engine) snapshot() (*Snapshot, error) {
	e.mu.RLock()
	snap := e.snap
	e.mu.RUnlock()

	if snap == nil {
		return nil, ErrNoDataset
	}
	return snap, nil
}

// PlanTrip resolves both endpoints, resolves the weekday to its next service
// date, and returns the qualifying trips in departure order. Entries carry
// the caller's original from/to strings, echoing the question as asked rather
// than the canonical stop names.
func (e *Engine) PlanTrip(ctx context.Context, when, from, to string, today time.Time) (TripPlan, error) {
	snap, err := e.snapshot()
	if err != nil {
		return TripPlan{}, err
	}

	fromStop, err := snap.Index.Resolve(from)
	if err != nil {
		return TripPlan{}, fmt.Errorf("origin %q: %w", from, err)
	}
	toStop, err := snap.Index.Resolve(to)
	if err != nil {
		return TripPlan{}, fmt.Errorf("destination %q: %w", to, err)
	}

	serviceID, err := NextServiceID(when, today, snap.ServiceDays)
	if err != nil {
		return TripPlan{}, fmt.Errorf("weekday %q: %w", when, err)
	}

	entries, err := FindTrips(ctx, snap.StopTimes, serviceID, fromStop.ID, toStop.ID)
	if err != nil {
		return TripPlan{}, err
	}
	for i := range entries {
		entries[i].From = from
		entries[i].To = to
	}

	return TripPlan{
		From:      fromStop,
		To:        toStop,
		ServiceID: serviceID,
		Entries:   entries,
	}, nil
}

// Fare resolves both endpoints and looks up the directed zone-pair fare.
func (e *Engine) Fare(from, to string) (FareQuote, error) {
	snap, err := e.snapshot()
	if err != nil {
		return FareQuote{}, err
	}

	fromStop, err := snap.Index.Resolve(from)
	if err != nil {
		return FareQuote{}, fmt.Errorf("origin %q: %w", from, err)
	}
	toStop, err := snap.Index.Resolve(to)
	if err != nil {
		return FareQuote{}, fmt.Errorf("destination %q: %w", to, err)
	}

	return snap.Fares.Lookup(fromStop.Zone, toStop.Zone)
}

// Resolve maps a free-form location string to its canonical stop.
func (e *Engine) Resolve(input string) (Stop, error) {
	snap, err := e.snapshot()
	if err != nil {
		return Stop{}, err
	}
	return snap.Index.Resolve(input)
}

// Stations returns the loaded stops. The slice belongs to the snapshot and
// must not be modified.
func (e *Engine) Stations() ([]Stop, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Stops, nil
}
