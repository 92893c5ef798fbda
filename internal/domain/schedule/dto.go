package schedule

import (
	"fmt"

	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/validator"
)

type UpsertScheduleRequest struct {
	EmployeeID       string `json:"-"`
	MondayMinutes    int    `json:"monday_minutes"`
	TuesdayMinutes   int    `json:"tuesday_minutes"`
	WednesdayMinutes int    `json:"wednesday_minutes"`
	ThursdayMinutes  int    `json:"thursday_minutes"`
	FridayMinutes    int    `json:"friday_minutes"`
	SaturdayMinutes  int    `json:"saturday_minutes"`
	SundayMinutes    int    `json:"sunday_minutes"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	days := []struct {
		field   string
		minutes int
	}{
		{"monday_minutes", r.MondayMinutes},
		{"tuesday_minutes", r.TuesdayMinutes},
		{"wednesday_minutes", r.WednesdayMinutes},
		{"thursday_minutes", r.ThursdayMinutes},
		{"friday_minutes", r.FridayMinutes},
		{"saturday_minutes", r.SaturdayMinutes},
		{"sunday_minutes", r.SundayMinutes},
	}
	for _, d := range days {
		if d.minutes < 0 || d.minutes > MinutesPerDay {
			errs = append(errs, validator.ValidationError{
				Field:   d.field,
				Message: fmt.Sprintf("%s must be between 0 and %d", d.field, MinutesPerDay),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	EmployeeID       string `json:"employee_id"`
	MondayMinutes    int    `json:"monday_minutes"`
	TuesdayMinutes   int    `json:"tuesday_minutes"`
	WednesdayMinutes int    `json:"wednesday_minutes"`
	ThursdayMinutes  int    `json:"thursday_minutes"`
	FridayMinutes    int    `json:"friday_minutes"`
	SaturdayMinutes  int    `json:"saturday_minutes"`
	SundayMinutes    int    `json:"sunday_minutes"`
	WeeklyMinutes    int    `json:"weekly_minutes"`
	UpdatedAt        string `json:"updated_at"`
}
