package timebank

import (
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/validator"
)

type PeriodExtractRequest struct {
	EmployeeID string
	From       string
	To         string
}

func (r *PeriodExtractRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: ErrInvalidPeriod.Message,
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DailyBalanceResponse struct {
	Date            string `json:"date"`
	Weekday         string `json:"weekday"`
	ExpectedMinutes int    `json:"expected_min"`
	WorkedMinutes   int    `json:"worked_min"`
	BalanceMinutes  int    `json:"balance_min"`
}

type PeriodExtractResponse struct {
	EmployeeID            string                 `json:"employee_id"`
	From                  string                 `json:"from"`
	To                    string                 `json:"to"`
	PerDay                []DailyBalanceResponse `json:"per_day"`
	PeriodTotalMinutes    int                    `json:"period_total_min"`
	CarriedMinutes        int                    `json:"carried_min"`
	BankedTotalMinutes    int                    `json:"banked_total_min"`
	VacationAvailableDays int                    `json:"vacation_available_days"`
}

type RecomputeRequest struct {
	EmployeeID string `json:"employee_id"`
	Competency string `json:"competency"`
}

func (r *RecomputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidCompetency(r.Competency); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "competency",
			Message: ErrInvalidCompetency.Message,
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecomputeResponse struct {
	EmployeeID     string `json:"employee_id"`
	Competency     string `json:"competency"`
	BalanceMinutes int    `json:"balance_min"`
	UpdatedAt      string `json:"updated_at"`
}
