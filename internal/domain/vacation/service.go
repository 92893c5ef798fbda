package vacation

import (
	"context"
)

type VacationService interface {
	// AvailableDays is the entitlement left after active requests are subtracted.
	AvailableDays(ctx context.Context, employeeID string) (int, error)
	GetBalance(ctx context.Context, employeeID string) (BalanceResponse, error)
	CreateRequest(ctx context.Context, req CreateVacationRequest) (VacationRequestResponse, error)
	DecideRequest(ctx context.Context, req DecideVacationRequest) (VacationRequestResponse, error)
	ListRequests(ctx context.Context, employeeID *string) ([]VacationRequestResponse, error)
}
