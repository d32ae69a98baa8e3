package gtfs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/gtfsdb"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/logging"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/transit"
)

// Manager owns the feed lifecycle: it loads the static feed, imports the
// big tables into SQLite, publishes query snapshots to the engine and keeps
// both static and realtime data fresh in the background.
type Manager struct {
	gtfsSource    string
	isLocalFile   bool
	config        Config
	engine        *transit.Engine
	GtfsDB        *gtfsdb.Client
	lastUpdated   time.Time
	staticMutex   sync.RWMutex
	overlay       *transit.RealtimeOverlay
	realTimeMutex sync.RWMutex
	shutdownChan  chan struct{}
	wg            sync.WaitGroup
	shutdownOnce  sync.Once
}

// InitManager loads the feed from config.StaticURL, publishes the first
// snapshot and starts the background refresh loops. The source can be either
// a URL or a local file path; local files are never refreshed.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.StaticURL, "http://") && !strings.HasPrefix(config.StaticURL, "https://")

	dbClient, err := gtfsdb.NewClient(gtfsdb.NewConfig(config.DBPath, config.Env, config.Verbose))
	if err != nil {
		return nil, fmt.Errorf("error creating GTFS database client: %w", err)
	}

	manager := &Manager{
		gtfsSource:   config.StaticURL,
		isLocalFile:  isLocalFile,
		config:       config,
		engine:       transit.NewEngine(logger),
		GtfsDB:       dbClient,
		shutdownChan: make(chan struct{}),
	}

	if err := manager.reloadStatic(); err != nil {
		_ = dbClient.Close()
		return nil, err
	}

	if !isLocalFile {
		manager.wg.Add(1)
		go manager.updateStaticGTFSPeriodically()
	}

	if config.realTimeDataEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		manager.updateGTFSRealtime(ctx, config)
		manager.wg.Add(1)
		go manager.updateGTFSRealtimePeriodically(config)
	}

	return manager, nil
}

// Engine returns the query engine fed by this manager.
func (manager *Manager) Engine() *transit.Engine {
	return manager.engine
}

// LastUpdated reports when the current snapshot was built.
func (manager *Manager) LastUpdated() time.Time {
	manager.staticMutex.RLock()
	defer manager.staticMutex.RUnlock()
	return manager.lastUpdated
}

// Shutdown gracefully stops the background goroutines and closes the database.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.GtfsDB != nil {
			_ = manager.GtfsDB.Close()
		}
	})
}

// reloadStatic loads the feed, imports the flattened tables in a single
// transaction and publishes a fresh snapshot. Index, calendar and fare table
// are built off-line first, so queries against the previous snapshot keep
// running until the publish.
func (manager *Manager) reloadStatic() error {
	staticData, fares, err := loadFeed(manager.gtfsSource, manager.isLocalFile)
	if err != nil {
		return err
	}

	if err := manager.GtfsDB.StoreDataset(buildDataset(staticData, fares)); err != nil {
		return fmt.Errorf("error importing GTFS dataset: %w", err)
	}

	matcherCfg, err := transit.DefaultMatcherConfig()
	if err != nil {
		return err
	}

	stops := make([]transit.Stop, 0, len(staticData.Stops))
	for _, stop := range staticData.Stops {
		stops = append(stops, transit.Stop{
			ID:   stop.Id,
			Name: stop.Name,
			Zone: stop.ZoneId,
		})
	}

	snapshot := &transit.Snapshot{
		Stops:       stops,
		Index:       transit.BuildStopIndex(stops, matcherCfg),
		ServiceDays: expandServiceDays(staticData.Services),
		Fares:       transit.NewFareTable(fares),
		StopTimes:   manager.GtfsDB,
		LoadedAt:    time.Now(),
	}
	manager.engine.Publish(snapshot)

	manager.staticMutex.Lock()
	manager.lastUpdated = snapshot.LoadedAt
	manager.staticMutex.Unlock()

	return nil
}

func (manager *Manager) updateStaticGTFSPeriodically() {
	defer manager.wg.Done()

	logger := slog.Default().With(slog.String("component", "gtfs_static_updater"))

	ticker := time.NewTicker(manager.config.staticRefresh())
	defer ticker.Stop()

	for { // nolint
		select {
		case <-ticker.C:
			logging.LogOperation(logger, "updating_gtfs_static_data")
			if err := manager.reloadStatic(); err != nil {
				logging.LogError(logger, "Error updating GTFS data", err,
					slog.String("source", manager.gtfsSource))
			}
		case <-manager.shutdownChan:
			logging.LogOperation(logger, "shutting_down_static_updates")
			return
		}
	}
}
