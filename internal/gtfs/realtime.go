package gtfs

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/jamespfennell/gtfs"
	gtfsrt "github.com/jamespfennell/gtfs/proto"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/logging"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/transit"
)

// RealtimeOverlay returns the most recently built overlay, or nil when no
// realtime fetch has succeeded yet.
func (manager *Manager) RealtimeOverlay() *transit.RealtimeOverlay {
	manager.realTimeMutex.RLock()
	defer manager.realTimeMutex.RUnlock()
	return manager.overlay
}

func loadRealtimeData(ctx context.Context, source string, headers map[string]string) (*gtfs.Realtime, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", source, nil)
	if err != nil {
		return nil, err
	}

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "gtfs_realtime_downloader")),
		"http_response_body")

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return gtfs.ParseRealtime(b, &gtfs.ParseRealtimeOptions{})
}

func (manager *Manager) updateGTFSRealtime(ctx context.Context, config Config) {
	logger := logging.FromContext(ctx).With(slog.String("component", "gtfs_realtime"))

	headers := map[string]string{}
	if config.RealTimeAuthHeaderKey != "" && config.RealTimeAuthHeaderValue != "" {
		headers[config.RealTimeAuthHeaderKey] = config.RealTimeAuthHeaderValue
	}

	var wg sync.WaitGroup
	var tripData, alertData *gtfs.Realtime
	var tripErr, alertErr error

	if config.TripUpdatesURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tripData, tripErr = loadRealtimeData(ctx, config.TripUpdatesURL, headers)
			if tripErr != nil {
				logging.LogError(logger, "Error loading GTFS-RT trip updates data", tripErr,
					slog.String("url", config.TripUpdatesURL))
			}
		}()
	}

	if config.AlertsURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			alertData, alertErr = loadRealtimeData(ctx, config.AlertsURL, headers)
			if alertErr != nil {
				logging.LogError(logger, "Error loading GTFS-RT alerts data", alertErr,
					slog.String("url", config.AlertsURL))
			}
		}()
	}

	wg.Wait()

	if ctx.Err() != nil {
		return
	}
	if tripErr != nil && alertErr != nil {
		return
	}

	var trips []gtfs.Trip
	if tripData != nil && tripErr == nil {
		trips = tripData.Trips
	}
	var alerts []gtfs.Alert
	if alertData != nil && alertErr == nil {
		alerts = alertData.Alerts
	}

	overlay := buildOverlay(trips, alerts)

	manager.realTimeMutex.Lock()
	manager.overlay = overlay
	manager.realTimeMutex.Unlock()
}

// buildOverlay condenses realtime feed messages into per-trip status. The
// delay is the latest stop-time update's departure delay, falling back to the
// arrival delay, matching how deviation is usually reported downstream.
func buildOverlay(trips []gtfs.Trip, alerts []gtfs.Alert) *transit.RealtimeOverlay {
	overlay := &transit.RealtimeOverlay{
		Trips: make(map[string]transit.TripStatus, len(trips)),
	}

	for _, trip := range trips {
		tripID := trip.ID.ID
		if tripID == "" {
			continue
		}

		status := overlay.Trips[tripID]
		status.Cancelled = trip.ID.ScheduleRelationship == gtfsrt.TripDescriptor_CANCELED

		for _, update := range trip.StopTimeUpdates {
			if update.Departure != nil && update.Departure.Delay != nil {
				status.DelaySeconds = int(update.Departure.Delay.Seconds())
			} else if update.Arrival != nil && update.Arrival.Delay != nil {
				status.DelaySeconds = int(update.Arrival.Delay.Seconds())
			}
		}

		overlay.Trips[tripID] = status
	}

	for _, alert := range alerts {
		headline := alertHeadline(alert)
		if headline == "" {
			continue
		}
		for _, entity := range alert.InformedEntities {
			if entity.TripID == nil || entity.TripID.ID == "" {
				continue
			}
			status := overlay.Trips[entity.TripID.ID]
			status.Alerts = append(status.Alerts, headline)
			overlay.Trips[entity.TripID.ID] = status
		}
	}

	return overlay
}

func alertHeadline(alert gtfs.Alert) string {
	for _, header := range alert.Header {
		if header.Text != "" {
			return header.Text
		}
	}
	return alert.ID
}

func (manager *Manager) updateGTFSRealtimePeriodically(config Config) {
	defer manager.wg.Done()

	logger := slog.Default().With(slog.String("component", "gtfs_realtime_updater"))

	ticker := time.NewTicker(config.realtimeRefresh())
	defer ticker.Stop()

	for { // nolint
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			ctx = logging.WithLogger(ctx, logger)

			logging.LogOperation(logger, "updating_gtfs_realtime_data")
			manager.updateGTFSRealtime(ctx, config)
			cancel()
		case <-manager.shutdownChan:
			logging.LogOperation(logger, "shutting_down_realtime_updates")
			return
		}
	}
}
