package utils

import "time"

const (
	DateLayout       = "2006-01-02"
	CompetencyLayout = "2006-01"
	TimeLayout       = "15:04:05"
)

// DateOf drops the clock part of t, keeping the calendar day as seen in t's
// own location, and returns it as midnight UTC. All date-only values in the
// time bank use this representation.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AtTimeOfDay places a wall clock offset on the given calendar day in loc.
func AtTimeOfDay(date time.Time, offset time.Duration, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).Add(offset)
}

// DaysInclusive counts the calendar days in [from, to].
func DaysInclusive(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours()/24) + 1
}

// FullMonthsBetween counts the complete months elapsed from start to end.
// It returns 0 when end precedes start.
func FullMonthsBetween(start, end time.Time) int {
	start, end = DateOf(start), DateOf(end)
	if end.Before(start) {
		return 0
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
