package vacation

import (
	"time"
)

const (
	MaxEntitledDays = 30
	AccrualPerMonth = "2.5"
)

type Status string

const (
	StatusCreated  Status = "created"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ActiveStatuses are the statuses that consume entitlement and block overlapping requests.
var ActiveStatuses = []Status{StatusCreated, StatusApproved}

// VacationRequest covers the inclusive range [StartDate, EndDate].
type VacationRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	DayCount   int
	Status     Status
	Reason     *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Overlaps reports whether the inclusive ranges [s1, e1] and [s2, e2] share a day.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

func IsActive(status Status) bool {
	for _, s := range ActiveStatuses {
		if s == status {
			return true
		}
	}
	return false
}
