package timezone

import (
	"errors"
	"time"
	_ "time/tzdata"
)

// DefaultTimezone is where jobs are carried out.
const DefaultTimezone = "Asia/Qatar"

var ErrInvalidTime = errors.New("invalid time")

// local layouts accepted when the client sends no offset
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

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

// ParseScheduled accepts RFC 3339 or a wall-clock time without offset, which
// is read in tz. The result is always UTC.
func ParseScheduled(value, tz string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	loc := Location(tz)
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidTime
}
