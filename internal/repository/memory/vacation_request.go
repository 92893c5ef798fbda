package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/vacation"
)

type VacationRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]vacation.VacationRequest
}

func NewVacationRequestRepository() *VacationRequestRepository {
	return &VacationRequestRepository{requests: make(map[string]vacation.VacationRequest)}
}

// Create implements vacation.VacationRequestRepository.
func (r *VacationRequestRepository) Create(_ context.Context, request vacation.VacationRequest) (vacation.VacationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasOverlappingLocked(request.EmployeeID, request.StartDate, request.EndDate, vacation.ActiveStatuses) {
		return vacation.VacationRequest{}, vacation.ErrOverlappingVacation
	}
	r.requests[request.ID] = request
	return request, nil
}

// GetByID implements vacation.VacationRequestRepository.
func (r *VacationRequestRepository) GetByID(_ context.Context, id string) (vacation.VacationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok {
		return vacation.VacationRequest{}, vacation.ErrVacationRequestNotFound
	}
	return request, nil
}

// List implements vacation.VacationRequestRepository.
func (r *VacationRequestRepository) List(_ context.Context, employeeID *string) ([]vacation.VacationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []vacation.VacationRequest
	for _, request := range r.requests {
		if employeeID != nil && request.EmployeeID != *employeeID {
			continue
		}
		result = append(result, request)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// UpdateStatus implements vacation.VacationRequestRepository.
func (r *VacationRequestRepository) UpdateStatus(_ context.Context, id string, status vacation.Status, decidedAt time.Time) (vacation.VacationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return vacation.VacationRequest{}, vacation.ErrVacationRequestNotFound
	}
	request.Status = status
	request.DecidedAt = &decidedAt
	request.UpdatedAt = decidedAt
	r.requests[id] = request
	return request, nil
}

// SumDays implements vacation.VacationRequestRepository.
func (r *VacationRequestRepository) SumDays(_ context.Context, employeeID string, statuses []vacation.Status) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, request := range r.requests {
		if request.EmployeeID == employeeID && slices.Contains(statuses, request.Status) {
			total += request.DayCount
		}
	}
	return total, nil
}

// HasOverlapping implements vacation.VacationRequestRepository.
func (r *VacationRequestRepository) HasOverlapping(_ context.Context, employeeID string, start, end time.Time, statuses []vacation.Status) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasOverlappingLocked(employeeID, start, end, statuses), nil
}

func (r *VacationRequestRepository) hasOverlappingLocked(employeeID string, start, end time.Time, statuses []vacation.Status) bool {
	for _, request := range r.requests {
		if request.EmployeeID != employeeID || !slices.Contains(statuses, request.Status) {
			continue
		}
		if vacation.Overlaps(start, end, request.StartDate, request.EndDate) {
			return true
		}
	}
	return false
}
