package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOf_KeepsLocalCalendarDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	// 01:30 UTC on the 2nd is still the 1st in Sao Paulo.
	instant := time.Date(2025, 8, 2, 1, 30, 0, 0, time.UTC).In(loc)

	assert.Equal(t, date(2025, 8, 1), DateOf(instant))
}

func TestAtTimeOfDay(t *testing.T) {
	got := AtTimeOfDay(date(2025, 8, 4), 8*time.Hour+15*time.Minute, time.UTC)

	assert.Equal(t, time.Date(2025, 8, 4, 8, 15, 0, 0, time.UTC), got)
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysInclusive(date(2025, 8, 1), date(2025, 8, 1)))
	assert.Equal(t, 10, DaysInclusive(date(2025, 8, 1), date(2025, 8, 10)))
	assert.Equal(t, 32, DaysInclusive(date(2025, 1, 31), date(2025, 3, 3)))
}

func TestFullMonthsBetween(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"thirty months", date(2023, 1, 1), date(2025, 7, 1), 30},
		{"one day short of a month", date(2025, 1, 15), date(2025, 2, 14), 0},
		{"exactly one month", date(2025, 1, 15), date(2025, 2, 15), 1},
		{"end before start", date(2026, 1, 1), date(2025, 1, 1), 0},
		{"same day", date(2025, 5, 5), date(2025, 5, 5), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FullMonthsBetween(c.start, c.end))
		})
	}
}
