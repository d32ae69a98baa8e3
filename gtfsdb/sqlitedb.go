package gtfsdb

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/appconf"
)

// createDB creates a new SQLite database with tables for the static schedule data
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		log.Fatal("DB is being created in a file.", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	createTables(tx)

	// Indexes that back the candidate-filtered stop-time scan: the joiner
	// first narrows trips by (service_id, direction_id), then reads only the
	// stop_times rows for that trip-id set.
	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_trips_service_direction ON trips(service_id, direction_id);
		CREATE INDEX IF NOT EXISTS idx_stop_times_trip_id ON stop_times(trip_id);
		CREATE INDEX IF NOT EXISTS idx_stop_times_stop_id ON stop_times(stop_id);
		CREATE INDEX IF NOT EXISTS idx_calendar_dates_date ON calendar_dates(date);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}

func createTables(tx *sql.Tx) {
	createStopsTable(tx)
	createCalendarDatesTable(tx)
	createTripsTable(tx)
	createStopTimesTable(tx)
	createFareAttributesTable(tx)
}

// createTable creates a table in the database
func createTable(tx *sql.Tx, tableName string, createStmt string) {
	_, err := tx.Exec(createStmt)
	if err != nil {
		log.Fatalf("Error creating table %s: %v", tableName, err)
	}
}

func createStopsTable(tx *sql.Tx) {
	createTable(tx, "stops", `
		CREATE TABLE IF NOT EXISTS stops (
			stop_id TEXT PRIMARY KEY,
			stop_name TEXT NOT NULL,
			zone_id TEXT
		);`,
	)
}

func createCalendarDatesTable(tx *sql.Tx) {
	createTable(tx, "calendar_dates", `
		CREATE TABLE IF NOT EXISTS calendar_dates (
			date TEXT NOT NULL,
			service_id TEXT NOT NULL,
			PRIMARY KEY (date, service_id)
		);`,
	)
}

func createTripsTable(tx *sql.Tx) {
	createTable(tx, "trips", `
		CREATE TABLE IF NOT EXISTS trips (
			trip_id TEXT PRIMARY KEY,
			service_id TEXT NOT NULL,
			direction_id INTEGER NOT NULL DEFAULT 0
		);`,
	)
}

func createStopTimesTable(tx *sql.Tx) {
	createTable(tx, "stop_times", `
		CREATE TABLE IF NOT EXISTS stop_times (
			trip_id TEXT NOT NULL,
			stop_id TEXT NOT NULL,
			departure_time INTEGER NOT NULL,
			stop_sequence INTEGER NOT NULL,
			FOREIGN KEY (trip_id) REFERENCES trips(trip_id),
			PRIMARY KEY (trip_id, stop_sequence)
		);`,
	)
}

func createFareAttributesTable(tx *sql.Tx) {
	createTable(tx, "fare_attributes", `
		CREATE TABLE IF NOT EXISTS fare_attributes (
			fare_id TEXT PRIMARY KEY,
			price REAL NOT NULL,
			currency_type TEXT NOT NULL
		);`,
	)
}
