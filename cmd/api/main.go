package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/app"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/appconf"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/gtfs"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/logging"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/restapi"
)

func main() {
	// Optional .env file for local development; missing files are fine.
	_ = godotenv.Load()

	var cfg app.Config
	var gtfsCfg gtfs.Config

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&gtfsCfg.StaticURL, "gtfs-url", envOr("GTFS_URL", "https://www.gotransit.com/static_files/gotransit/assets/Files/GO_GTFS.zip"), "URL or file path for a static GTFS zip file")
	flag.StringVar(&gtfsCfg.TripUpdatesURL, "trip-updates-url", os.Getenv("TRIP_UPDATES_URL"), "URL for the GTFS-RT trip updates feed")
	flag.StringVar(&gtfsCfg.AlertsURL, "alerts-url", os.Getenv("ALERTS_URL"), "URL for the GTFS-RT service alerts feed")
	flag.StringVar(&gtfsCfg.RealTimeAuthHeaderKey, "rt-auth-header-key", os.Getenv("RT_AUTH_HEADER_KEY"), "Optional auth header name for realtime feeds")
	flag.StringVar(&gtfsCfg.RealTimeAuthHeaderValue, "rt-auth-header-value", os.Getenv("RT_AUTH_HEADER_VALUE"), "Optional auth header value for realtime feeds")
	flag.StringVar(&gtfsCfg.DBPath, "db-path", envOr("DB_PATH", "gtfs.db"), "Path for the SQLite database file")
	flag.BoolVar(&gtfsCfg.Verbose, "verbose", false, "Verbose database logging")
	flag.Parse()

	gtfsCfg.Env = appconf.EnvFlagToEnvironment(cfg.Env)

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(logger)

	gtfsManager, err := gtfs.InitManager(gtfsCfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to initialize GTFS manager", err)
		os.Exit(1)
	}
	defer gtfsManager.Shutdown()

	application := &app.Application{
		Config:      cfg,
		GtfsConfig:  gtfsCfg,
		Logger:      logger,
		GtfsManager: gtfsManager,
	}
	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		logger.Info("shutting down server", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logging.LogError(logger, "server error", err)
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logging.LogError(logger, "server shutdown error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
