package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/schedule"
	"github.com/google/uuid"
)

type scheduleServiceImpl struct {
	scheduleRepo schedule.WeeklyScheduleRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewScheduleService(scheduleRepo schedule.WeeklyScheduleRepository, employeeRepo employee.EmployeeRepository, now func() time.Time) schedule.ScheduleService {
	if now == nil {
		now = time.Now
	}
	return &scheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		now:          now,
	}
}

// GetSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetSchedule(ctx context.Context, employeeID string) (schedule.ScheduleResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched, err := s.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	if sched == nil {
		return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
	}

	return toResponse(*sched), nil
}

// UpsertSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpsertSchedule(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	now := s.now().UTC()
	saved, err := s.scheduleRepo.Upsert(ctx, schedule.WeeklySchedule{
		ID:               uuid.Must(uuid.NewV7()).String(),
		EmployeeID:       req.EmployeeID,
		MondayMinutes:    req.MondayMinutes,
		TuesdayMinutes:   req.TuesdayMinutes,
		WednesdayMinutes: req.WednesdayMinutes,
		ThursdayMinutes:  req.ThursdayMinutes,
		FridayMinutes:    req.FridayMinutes,
		SaturdayMinutes:  req.SaturdayMinutes,
		SundayMinutes:    req.SundayMinutes,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to save schedule: %w", err)
	}

	slog.InfoContext(ctx, "weekly schedule saved", "employee_id", saved.EmployeeID)

	return toResponse(saved), nil
}

func toResponse(s schedule.WeeklySchedule) schedule.ScheduleResponse {
	weekly := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekly += s.MinutesFor(d)
	}
	return schedule.ScheduleResponse{
		EmployeeID:       s.EmployeeID,
		MondayMinutes:    s.MondayMinutes,
		TuesdayMinutes:   s.TuesdayMinutes,
		WednesdayMinutes: s.WednesdayMinutes,
		ThursdayMinutes:  s.ThursdayMinutes,
		FridayMinutes:    s.FridayMinutes,
		SaturdayMinutes:  s.SaturdayMinutes,
		SundayMinutes:    s.SundayMinutes,
		WeeklyMinutes:    weekly,
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
}
