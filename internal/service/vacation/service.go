package vacation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
)

type VacationServiceImpl struct {
	vacation.VacationRequestRepository
	employee.EmployeeRepository
	location *time.Location
	now      func() time.Time
}

func NewVacationService(
	vacationRepo vacation.VacationRequestRepository,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
	now func() time.Time,
) vacation.VacationService {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &VacationServiceImpl{
		VacationRequestRepository: vacationRepo,
		EmployeeRepository:        employeeRepo,
		location:                  location,
		now:                       now,
	}
}

// AvailableDays implements vacation.VacationService.
func (s *VacationServiceImpl) AvailableDays(ctx context.Context, employeeID string) (int, error) {
	accrual, _, err := s.accrual(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	return accrual.AvailableDays, nil
}

// GetBalance implements vacation.VacationService.
func (s *VacationServiceImpl) GetBalance(ctx context.Context, employeeID string) (vacation.BalanceResponse, error) {
	accrual, emp, err := s.accrual(ctx, employeeID)
	if err != nil {
		return vacation.BalanceResponse{}, err
	}

	return vacation.BalanceResponse{
		EmployeeID:     emp.ID,
		HireDate:       emp.HireDate.Format(utils.DateLayout),
		MonthsEmployed: accrual.MonthsEmployed,
		EntitledDays:   accrual.EntitledDays,
		ConsumedDays:   accrual.ConsumedDays,
		AvailableDays:  accrual.AvailableDays,
	}, nil
}

func (s *VacationServiceImpl) accrual(ctx context.Context, employeeID string) (Accrual, employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return Accrual{}, employee.Employee{}, err
	}

	consumed, err := s.VacationRequestRepository.SumDays(ctx, employeeID, vacation.ActiveStatuses)
	if err != nil {
		return Accrual{}, employee.Employee{}, fmt.Errorf("failed to sum vacation days: %w", err)
	}

	today := utils.DateOf(s.now().In(s.location))
	return ComputeAccrual(emp.HireDate, today, consumed), emp, nil
}

// CreateRequest implements vacation.VacationService.
func (s *VacationServiceImpl) CreateRequest(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationRequestResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return vacation.VacationRequestResponse{}, err
	}

	overlapping, err := s.VacationRequestRepository.HasOverlapping(ctx, req.EmployeeID, req.ParsedStart, req.ParsedEnd, vacation.ActiveStatuses)
	if err != nil {
		return vacation.VacationRequestResponse{}, fmt.Errorf("failed to check overlapping vacations: %w", err)
	}
	if overlapping {
		return vacation.VacationRequestResponse{}, vacation.ErrOverlappingVacation
	}

	now := s.now().UTC()
	created, err := s.VacationRequestRepository.Create(ctx, vacation.VacationRequest{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: req.EmployeeID,
		StartDate:  req.ParsedStart,
		EndDate:    req.ParsedEnd,
		DayCount:   utils.DaysInclusive(req.ParsedStart, req.ParsedEnd),
		Status:     vacation.StatusCreated,
		Reason:     req.Reason,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if errors.Is(err, vacation.ErrOverlappingVacation) {
			return vacation.VacationRequestResponse{}, err
		}
		return vacation.VacationRequestResponse{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	slog.InfoContext(ctx, "vacation request created",
		"employee_id", created.EmployeeID,
		"request_id", created.ID,
		"days", created.DayCount,
	)

	return toResponse(created), nil
}

// DecideRequest implements vacation.VacationService.
// The decision is applied even when the request was already decided.
func (s *VacationServiceImpl) DecideRequest(ctx context.Context, req vacation.DecideVacationRequest) (vacation.VacationRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationRequestResponse{}, err
	}

	status := vacation.StatusRejected
	if req.Approve {
		status = vacation.StatusApproved
	}

	updated, err := s.VacationRequestRepository.UpdateStatus(ctx, req.RequestID, status, s.now().UTC())
	if err != nil {
		if errors.Is(err, vacation.ErrVacationRequestNotFound) {
			return vacation.VacationRequestResponse{}, err
		}
		return vacation.VacationRequestResponse{}, fmt.Errorf("failed to update vacation request: %w", err)
	}

	slog.InfoContext(ctx, "vacation request decided",
		"request_id", updated.ID,
		"status", updated.Status,
	)

	return toResponse(updated), nil
}

// ListRequests implements vacation.VacationService.
func (s *VacationServiceImpl) ListRequests(ctx context.Context, employeeID *string) ([]vacation.VacationRequestResponse, error) {
	requests, err := s.VacationRequestRepository.List(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}

	responses := make([]vacation.VacationRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

func toResponse(r vacation.VacationRequest) vacation.VacationRequestResponse {
	response := vacation.VacationRequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate.Format(utils.DateLayout),
		EndDate:    r.EndDate.Format(utils.DateLayout),
		DayCount:   r.DayCount,
		Status:     r.Status,
		Reason:     r.Reason,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
	if r.DecidedAt != nil {
		decided := r.DecidedAt.Format(time.RFC3339)
		response.DecidedAt = &decided
	}
	return response
}
