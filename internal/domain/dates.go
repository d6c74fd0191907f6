package domain

import "time"

// DateFormat is the wire format for all calendar dates.
const DateFormat = "2006-01-02"

// dateOnly drops the time-of-day component so day arithmetic never
// crosses a DST boundary.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day, normalized.
func Today() time.Time {
	return dateOnly(time.Now())
}
