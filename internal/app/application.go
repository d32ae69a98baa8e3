package app

import (
	"log/slog"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/gtfs"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config      Config
	GtfsConfig  gtfs.Config
	Logger      *slog.Logger
	GtfsManager *gtfs.Manager
}

// Config holds all the configuration settings for our Application: the
// network port to listen on and the name of the current operating
// environment (development, test, production). These are read from
// command-line flags when the Application starts.
type Config struct {
	Port int
	Env  string
}
