package timebank

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
	"github.com/stretchr/testify/assert"
)

var (
	monday   = time.Date(2025, time.August, 4, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, time.August, 9, 0, 0, 0, 0, time.UTC)
)

func clockAt(date time.Time, hour, minute int) *time.Time {
	return clockAtSecond(date, hour, minute, 0)
}

func clockAtSecond(date time.Time, hour, minute, second int) *time.Time {
	t := date.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second)
	return &t
}

func TestDailyBalance(t *testing.T) {
	tests := []struct {
		name     string
		sched    *schedule.WeeklySchedule
		date     time.Time
		record   *timeclock.PunchRecord
		expected int
		worked   int
		balance  int
	}{
		{
			name:     "full day with lunch on default schedule",
			date:     monday,
			record:   &timeclock.PunchRecord{Arrival: clockAt(monday, 8, 0), LunchStart: clockAt(monday, 12, 0), LunchEnd: clockAt(monday, 13, 0), Departure: clockAt(monday, 17, 0)},
			expected: 480, worked: 480, balance: 0,
		},
		{
			name:     "no lunch",
			date:     tuesday,
			record:   &timeclock.PunchRecord{Arrival: clockAt(tuesday, 8, 0), Departure: clockAt(tuesday, 16, 0)},
			expected: 480, worked: 480, balance: 0,
		},
		{
			name:     "no record",
			date:     monday,
			expected: 480, worked: 0, balance: -480,
		},
		{
			name:     "arrival only",
			date:     monday,
			record:   &timeclock.PunchRecord{Arrival: clockAt(monday, 8, 0)},
			expected: 480, worked: 0, balance: -480,
		},
		{
			name:     "lunch longer than the day floors at zero",
			date:     monday,
			record:   &timeclock.PunchRecord{Arrival: clockAt(monday, 9, 0), LunchStart: clockAt(monday, 8, 0), LunchEnd: clockAt(monday, 18, 0), Departure: clockAt(monday, 10, 0)},
			expected: 480, worked: 0, balance: -480,
		},
		{
			name:     "only lunch start is ignored",
			date:     monday,
			record:   &timeclock.PunchRecord{Arrival: clockAt(monday, 8, 0), LunchStart: clockAt(monday, 12, 0), Departure: clockAt(monday, 17, 30)},
			expected: 480, worked: 570, balance: 90,
		},
		{
			name:     "weekend default expects nothing",
			date:     saturday,
			record:   &timeclock.PunchRecord{Arrival: clockAt(saturday, 9, 0), Departure: clockAt(saturday, 11, 0)},
			expected: 0, worked: 120, balance: 120,
		},
		{
			name:     "configured schedule",
			sched:    &schedule.WeeklySchedule{MondayMinutes: 360, SaturdayMinutes: 240},
			date:     saturday,
			expected: 240, worked: 0, balance: -240,
		},
		{
			name:     "partial minutes are truncated",
			date:     monday,
			record:   &timeclock.PunchRecord{Arrival: clockAt(monday, 8, 0), Departure: clockAtSecond(monday, 8, 59, 59)},
			expected: 480, worked: 59, balance: -421,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyBalance(tt.sched, tt.date, tt.record)
			assert.Equal(t, tt.date, got.Date)
			assert.Equal(t, tt.expected, got.ExpectedMinutes)
			assert.Equal(t, tt.worked, got.WorkedMinutes)
			assert.Equal(t, tt.balance, got.BalanceMinutes)

			assert.Equal(t, got, DailyBalance(tt.sched, tt.date, tt.record))
		})
	}
}
