package daily

import (
	"time"
	_ "time/tzdata" // reference zone must resolve on hosts without zoneinfo
)

// DateLayout is the ledger date format (YYYYMMDD).
const DateLayout = "20060102"

// DefaultTimezone is the reference zone deciding when a new day starts.
const DefaultTimezone = "Europe/Paris"

// DateKey returns YYYYMMDD for t in loc.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

// Calendar tells which day it is in a fixed reference zone.
type Calendar struct {
	Now      func() time.Time
	Location *time.Location
}

// NewCalendar returns a wall-clock calendar for loc.
func NewCalendar(loc *time.Location) Calendar {
	return Calendar{Now: time.Now, Location: loc}
}

// Today returns the current date key.
func (c Calendar) Today() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return DateKey(now(), c.Location)
}
