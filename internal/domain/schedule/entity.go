package schedule

import "time"

const (
	MinutesPerDay         = 24 * 60
	DefaultWorkdayMinutes = 480
	DefaultWeekendMinutes = 0
)

// WeeklySchedule holds the minutes an employee is expected to work on each weekday.
type WeeklySchedule struct {
	ID               string
	EmployeeID       string
	MondayMinutes    int
	TuesdayMinutes   int
	WednesdayMinutes int
	ThursdayMinutes  int
	FridayMinutes    int
	SaturdayMinutes  int
	SundayMinutes    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// MinutesFor returns the configured minutes for the weekday.
func (s WeeklySchedule) MinutesFor(day time.Weekday) int {
	switch day {
	case time.Monday:
		return s.MondayMinutes
	case time.Tuesday:
		return s.TuesdayMinutes
	case time.Wednesday:
		return s.WednesdayMinutes
	case time.Thursday:
		return s.ThursdayMinutes
	case time.Friday:
		return s.FridayMinutes
	case time.Saturday:
		return s.SaturdayMinutes
	default:
		return s.SundayMinutes
	}
}

// ExpectedMinutes resolves the expected minutes for a weekday, falling back
// to 8h Monday to Friday when the employee has no schedule.
func ExpectedMinutes(s *WeeklySchedule, day time.Weekday) int {
	if s == nil {
		if day == time.Saturday || day == time.Sunday {
			return DefaultWeekendMinutes
		}
		return DefaultWorkdayMinutes
	}
	return s.MinutesFor(day)
}
