package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// DateLayout is the calendar-date wire format used throughout the API.
const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// Today returns the current date truncated to local midnight.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ParseDate parses a calendar date in the default timezone.
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, dateStr, Location(DefaultTimezone))
}
