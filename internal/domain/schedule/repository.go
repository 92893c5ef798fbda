package schedule

import "context"

type WeeklyScheduleRepository interface {
	// GetByEmployeeID returns nil, nil when the employee has no schedule configured.
	GetByEmployeeID(ctx context.Context, employeeID string) (*WeeklySchedule, error)

	// Upsert replaces the employee's schedule, creating it if needed.
	Upsert(ctx context.Context, schedule WeeklySchedule) (WeeklySchedule, error)
}
