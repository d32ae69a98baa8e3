package gtfs

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jamespfennell/gtfs"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/gtfsdb"
	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/transit"
)

const dateKeyLayout = "20060102"

// rawFeedData reads the zipped feed bytes from a URL or a local file.
func rawFeedData(source string, isLocalFile bool) ([]byte, error) {
	if isLocalFile {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		return b, nil
	}

	resp, err := http.Get(source)
	if err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	defer resp.Body.Close() // nolint

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}
	return b, nil
}

// loadFeed reads and parses the static feed, plus the fare attributes the
// static parser does not cover.
func loadFeed(source string, isLocalFile bool) (*gtfs.Static, map[string]transit.FareRule, error) {
	b, err := rawFeedData(source, isLocalFile)
	if err != nil {
		return nil, nil, err
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	fares, err := parseFareAttributes(b)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing fare attributes: %w", err)
	}

	return staticData, fares, nil
}

// buildDataset flattens the parsed feed into the row types the database
// import expects. Stop-time departures become seconds past midnight, the
// representation every downstream comparison uses.
func buildDataset(staticData *gtfs.Static, fares map[string]transit.FareRule) *gtfsdb.Dataset {
	ds := &gtfsdb.Dataset{}

	for _, stop := range staticData.Stops {
		ds.Stops = append(ds.Stops, gtfsdb.Stop{
			ID:     stop.Id,
			Name:   stop.Name,
			ZoneID: stop.ZoneId,
		})
	}

	for _, day := range expandServiceDays(staticData.Services) {
		ds.ServiceDates = append(ds.ServiceDates, gtfsdb.ServiceDate{
			Date:      day.Date.Format(dateKeyLayout),
			ServiceID: day.ServiceID,
		})
	}

	for _, trip := range staticData.Trips {
		serviceID := ""
		if trip.Service != nil {
			serviceID = trip.Service.Id
		}
		ds.Trips = append(ds.Trips, gtfsdb.Trip{
			ID:          trip.ID,
			ServiceID:   serviceID,
			DirectionID: directionID(trip.DirectionId),
		})

		for _, st := range trip.StopTimes {
			if st.Stop == nil {
				continue
			}
			ds.StopTimes = append(ds.StopTimes, gtfsdb.StopTime{
				TripID:        trip.ID,
				StopID:        st.Stop.Id,
				DepartureTime: int64(st.DepartureTime / time.Second),
				StopSequence:  int64(st.StopSequence),
			})
		}
	}

	for _, rule := range fares {
		ds.FareAttributes = append(ds.FareAttributes, gtfsdb.FareAttribute{
			FareID:       rule.FareID,
			Price:        rule.Price,
			CurrencyType: rule.Currency,
		})
	}

	return ds
}

// expandServiceDays flattens services into concrete operating dates: the
// weekly pattern over the service window, plus added dates, minus removed
// dates. Feeds defined purely through calendar_dates.txt arrive with all
// weekday flags off and only added dates, which this handles naturally.
func expandServiceDays(services []gtfs.Service) []transit.ServiceDay {
	var days []transit.ServiceDay
	seen := make(map[string]struct{})

	add := func(date time.Time, serviceID string) {
		key := serviceID + "|" + date.Format(dateKeyLayout)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		days = append(days, transit.ServiceDay{Date: date, ServiceID: serviceID})
	}

	for _, svc := range services {
		removed := make(map[string]struct{}, len(svc.RemovedDates))
		for _, d := range svc.RemovedDates {
			removed[d.Format(dateKeyLayout)] = struct{}{}
		}

		if !svc.StartDate.IsZero() && !svc.EndDate.Before(svc.StartDate) {
			for d := svc.StartDate; !d.After(svc.EndDate); d = d.AddDate(0, 0, 1) {
				if !weekdayEnabled(svc, d.Weekday()) {
					continue
				}
				if _, skip := removed[d.Format(dateKeyLayout)]; skip {
					continue
				}
				add(d, svc.Id)
			}
		}

		for _, d := range svc.AddedDates {
			if _, skip := removed[d.Format(dateKeyLayout)]; skip {
				continue
			}
			add(d, svc.Id)
		}
	}

	return days
}

func weekdayEnabled(svc gtfs.Service, day time.Weekday) bool {
	switch day {
	case time.Monday:
		return svc.Monday
	case time.Tuesday:
		return svc.Tuesday
	case time.Wednesday:
		return svc.Wednesday
	case time.Thursday:
		return svc.Thursday
	case time.Friday:
		return svc.Friday
	case time.Saturday:
		return svc.Saturday
	case time.Sunday:
		return svc.Sunday
	}
	return false
}

// directionID maps the parsed direction enum back to the feed's 0/1 values.
// Trips with no direction_id column land in direction 0 alongside explicit
// zeros.
func directionID(d gtfs.DirectionID) int64 {
	if d == gtfs.DirectionID_True {
		return 1
	}
	return 0
}
