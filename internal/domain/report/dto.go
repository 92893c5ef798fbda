package report

import (
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY STATEMENT
// ========================================

type SendStatementRequest struct {
	EmployeeID string `json:"employee_id"`
	Competency string `json:"competency"`
}

func (r *SendStatementRequest) Validate() error {
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
			Message: "competency must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatementResponse struct {
	EmployeeID         string `json:"employee_id"`
	Competency         string `json:"competency"`
	SentTo             string `json:"sent_to"`
	PeriodTotalMinutes int    `json:"period_total_min"`
	BankedTotalMinutes int    `json:"banked_total_min"`
	Days               int    `json:"days"`
}
