package timebank

import (
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
)

// WorkedMinutes is the time between arrival and departure less the lunch
// break. It is 0 when the day has no arrival or departure and never negative.
func WorkedMinutes(record *timeclock.PunchRecord) int {
	if record == nil || record.Arrival == nil || record.Departure == nil {
		return 0
	}

	total := minutesBetween(*record.Arrival, *record.Departure)
	if record.LunchStart != nil && record.LunchEnd != nil {
		total -= minutesBetween(*record.LunchStart, *record.LunchEnd)
	}
	return max(total, 0)
}

// DailyBalance computes expected, worked and balance minutes for one date.
// sched may be nil, record may be nil.
func DailyBalance(sched *schedule.WeeklySchedule, date time.Time, record *timeclock.PunchRecord) timebank.DailyBalance {
	expected := schedule.ExpectedMinutes(sched, date.Weekday())
	worked := WorkedMinutes(record)
	return timebank.DailyBalance{
		Date:            date,
		ExpectedMinutes: expected,
		WorkedMinutes:   worked,
		BalanceMinutes:  worked - expected,
	}
}

// minutesBetween truncates to whole minutes.
func minutesBetween(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}
