package vacation

import (
	"context"
	"time"
)

type VacationRequestRepository interface {
	// Create stores the request unless it overlaps an active request of the
	// same employee, in which case ErrOverlappingVacation is returned. The
	// check and the insert are atomic per employee.
	Create(ctx context.Context, request VacationRequest) (VacationRequest, error)
	GetByID(ctx context.Context, id string) (VacationRequest, error)
	// List returns requests newest first, all employees when employeeID is nil.
	List(ctx context.Context, employeeID *string) ([]VacationRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, decidedAt time.Time) (VacationRequest, error)
	SumDays(ctx context.Context, employeeID string, statuses []Status) (int, error)
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time, statuses []Status) (bool, error)
}
