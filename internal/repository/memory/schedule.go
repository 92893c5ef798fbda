package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/schedule"
)

type WeeklyScheduleRepository struct {
	mu        sync.RWMutex
	schedules map[string]schedule.WeeklySchedule
}

func NewWeeklyScheduleRepository() *WeeklyScheduleRepository {
	return &WeeklyScheduleRepository{schedules: make(map[string]schedule.WeeklySchedule)}
}

// GetByEmployeeID implements schedule.WeeklyScheduleRepository.
func (r *WeeklyScheduleRepository) GetByEmployeeID(_ context.Context, employeeID string) (*schedule.WeeklySchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schedules[employeeID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Upsert implements schedule.WeeklyScheduleRepository.
func (r *WeeklyScheduleRepository) Upsert(_ context.Context, s schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.schedules[s.EmployeeID]; ok {
		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
	}
	r.schedules[s.EmployeeID] = s
	return s, nil
}
