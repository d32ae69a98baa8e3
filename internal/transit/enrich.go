package transit

// TripStatus is the realtime state of one trip: a departure delay, a
// cancellation flag and any active alert headlines.
type TripStatus struct {
	DelaySeconds int
	Cancelled    bool
	Alerts       []string
}

// RealtimeOverlay maps trip ids to their current realtime status. An empty
// or nil overlay is valid and leaves itineraries untouched.
type RealtimeOverlay struct {
	Trips map[string]TripStatus
}

// Enrich returns a copy of the itinerary with realtime status merged in by
// trip id. Schedule fields are never altered; realtime data only decorates.
// Entries without a matching overlay record pass through unchanged.
func Enrich(entries []ItineraryEntry, overlay *RealtimeOverlay) []ItineraryEntry {
	if len(entries) == 0 {
		return entries
	}

	out := make([]ItineraryEntry, len(entries))
	copy(out, entries)

	if overlay == nil || len(overlay.Trips) == 0 {
		return out
	}

	for i := range out {
		status, ok := overlay.Trips[out[i].TripID]
		if !ok {
			continue
		}
		out[i].DelaySeconds = status.DelaySeconds
		out[i].Cancelled = status.Cancelled
		out[i].Alerts = status.Alerts
	}

	return out
}
