package transit

import (
	"strings"
	"time"
)

const dateLayout = "20060102"

// ServiceDay is one calendar date on which a named service pattern operates.
// Multiple dates may share a ServiceID.
type ServiceDay struct {
	Date      time.Time
	ServiceID string
}

// NextServiceID resolves a weekday name to the service id of the nearest
// strictly-future date with that weekday. "Monday" always means the next
// Monday, never today, even when today is a Monday. Unknown weekday names
// and weekdays without future service both report ErrServiceNotFound.
func NextServiceID(weekday string, today time.Time, days []ServiceDay) (string, error) {
	target, ok := parseWeekday(weekday)
	if !ok {
		return "", ErrServiceNotFound
	}

	// Dates are compared by their YYYYMMDD rendering so a caller-supplied
	// "today" with a time-of-day or differing zone cannot skew the cutoff.
	cutoff := today.Format(dateLayout)

	var best ServiceDay
	found := false
	for _, day := range days {
		if day.Date.Format(dateLayout) <= cutoff {
			continue
		}
		if day.Date.Weekday() != target {
			continue
		}
		if !found || day.Date.Before(best.Date) {
			best = day
			found = true
		}
	}

	if !found {
		return "", ErrServiceNotFound
	}
	return best.ServiceID, nil
}

func parseWeekday(name string) (time.Weekday, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == trimmed {
			return d, true
		}
	}
	return 0, false
}
