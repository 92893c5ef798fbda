package schedule

import "context"

type ScheduleService interface {
	GetSchedule(ctx context.Context, employeeID string) (ScheduleResponse, error)
	UpsertSchedule(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
}
