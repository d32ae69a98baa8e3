package gtfsdb

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

// Dataset is one complete snapshot of the schedule tables, imported wholesale.
type Dataset struct {
	Stops          []Stop
	ServiceDates   []ServiceDate
	Trips          []Trip
	StopTimes      []StopTime
	FareAttributes []FareAttribute
}

// StoreDataset replaces the entire database contents with the given dataset
// in a single transaction. The schedule is never patched incrementally; a
// refresh discards the previous rows.
func (c *Client) StoreDataset(ds *Dataset) error {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)

		if c.config.verbose {
			log.Println("Importing schedule data took", c.importRuntime.String())
		}
	}()

	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	for _, table := range []string{"stop_times", "trips", "calendar_dates", "stops", "fare_attributes"} {
		if _, err := tx.Exec("DELETE FROM " + table + ";"); err != nil {
			return fmt.Errorf("error clearing table %s: %w", table, err)
		}
	}

	if err := insertStopBatch(tx, ds.Stops); err != nil {
		return err
	}
	if err := insertServiceDateBatch(tx, ds.ServiceDates); err != nil {
		return err
	}
	if err := insertTripBatch(tx, ds.Trips); err != nil {
		return err
	}
	if err := insertStopTimeBatch(tx, ds.StopTimes); err != nil {
		return err
	}
	if err := insertFareAttributeBatch(tx, ds.FareAttributes); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func insertStopBatch(tx *sql.Tx, stops []Stop) error {
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stops (stop_id, stop_name, zone_id) VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, stop := range stops {
		if _, err := stmt.Exec(stop.ID, stop.Name, stop.ZoneID); err != nil {
			return fmt.Errorf("error inserting stop: %w", err)
		}
	}

	return nil
}

func insertServiceDateBatch(tx *sql.Tx, dates []ServiceDate) error {
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO calendar_dates (date, service_id) VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, d := range dates {
		if _, err := stmt.Exec(d.Date, d.ServiceID); err != nil {
			return fmt.Errorf("error inserting calendar date: %w", err)
		}
	}

	return nil
}

func insertTripBatch(tx *sql.Tx, trips []Trip) error {
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO trips (trip_id, service_id, direction_id) VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, trip := range trips {
		if _, err := stmt.Exec(trip.ID, trip.ServiceID, trip.DirectionID); err != nil {
			return fmt.Errorf("error inserting trip: %w", err)
		}
	}

	return nil
}

func insertStopTimeBatch(tx *sql.Tx, stopTimes []StopTime) error {
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stop_times (trip_id, stop_id, departure_time, stop_sequence)
		VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, st := range stopTimes {
		if _, err := stmt.Exec(st.TripID, st.StopID, st.DepartureTime, st.StopSequence); err != nil {
			return fmt.Errorf("error inserting stop_time: %w", err)
		}
	}

	return nil
}

func insertFareAttributeBatch(tx *sql.Tx, fares []FareAttribute) error {
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO fare_attributes (fare_id, price, currency_type) VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, f := range fares {
		if _, err := stmt.Exec(f.FareID, f.Price, f.CurrencyType); err != nil {
			return fmt.Errorf("error inserting fare attribute: %w", err)
		}
	}

	return nil
}
