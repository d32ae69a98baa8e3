package gtfs

import (
	"time"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/appconf"
)

// Config carries everything the manager needs to load and refresh a feed.
// StaticURL may be an http(s) URL or a local file path.
type Config struct {
	StaticURL               string
	TripUpdatesURL          string
	AlertsURL               string
	RealTimeAuthHeaderKey   string
	RealTimeAuthHeaderValue string

	DBPath  string
	Env     appconf.Environment
	Verbose bool

	// Zero values fall back to defaultStaticRefresh / defaultRealtimeRefresh.
	StaticRefreshInterval   time.Duration
	RealtimeRefreshInterval time.Duration
}

const (
	defaultStaticRefresh   = 24 * time.Hour
	defaultRealtimeRefresh = 30 * time.Second
)

func (config Config) realTimeDataEnabled() bool {
	return config.TripUpdatesURL != "" || config.AlertsURL != ""
}

func (config Config) staticRefresh() time.Duration {
	if config.StaticRefreshInterval > 0 {
		return config.StaticRefreshInterval
	}
	return defaultStaticRefresh
}

func (config Config) realtimeRefresh() time.Duration {
	if config.RealtimeRefreshInterval > 0 {
		return config.RealtimeRefreshInterval
	}
	return defaultRealtimeRefresh
}
