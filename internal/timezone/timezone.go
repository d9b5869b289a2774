package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

const dateLayout = "2006-01-02"

// Location resolves tz, falling back to DefaultTimezone and then UTC.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// ParseDate reads a YYYY-MM-DD day as midnight in tz.
func ParseDate(tz, s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, Location(tz))
}

// DayEnd is the first instant after the day that starts at day.
func DayEnd(day time.Time) time.Time {
	return day.AddDate(0, 0, 1)
}
