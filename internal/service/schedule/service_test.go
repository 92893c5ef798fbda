package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/timebank-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "0198a0b2-7c1d-7a3e-9f10-123456789abc"

func newTestService() schedule.ScheduleService {
	employees := memory.NewEmployeeRepository(employee.Employee{
		ID:               testEmployeeID,
		FullName:         "Elisa Rocha",
		EmploymentStatus: employee.EmploymentStatusActive,
	})
	now := func() time.Time { return time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC) }
	return NewScheduleService(memory.NewWeeklyScheduleRepository(), employees, now)
}

func TestScheduleService_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.GetSchedule(ctx, testEmployeeID)
	require.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	saved, err := svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{
		EmployeeID:       testEmployeeID,
		MondayMinutes:    480,
		TuesdayMinutes:   480,
		WednesdayMinutes: 480,
		ThursdayMinutes:  480,
		FridayMinutes:    240,
	})
	require.NoError(t, err)
	assert.Equal(t, 2160, saved.WeeklyMinutes)

	saved, err = svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{
		EmployeeID:      testEmployeeID,
		MondayMinutes:   360,
		SaturdayMinutes: 120,
	})
	require.NoError(t, err)

	got, err := svc.GetSchedule(ctx, testEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Equal(t, 360, got.MondayMinutes)
	assert.Equal(t, 0, got.TuesdayMinutes)
	assert.Equal(t, 120, got.SaturdayMinutes)
}

func TestScheduleService_UpsertErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{EmployeeID: testEmployeeID, SundayMinutes: 1441})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{EmployeeID: testEmployeeID, MondayMinutes: -1})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{EmployeeID: "0198a0b2-7c1d-7a3e-9f10-000000000000"})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestExpectedMinutes_DefaultsWithoutSchedule(t *testing.T) {
	assert.Equal(t, 480, schedule.ExpectedMinutes(nil, time.Monday))
	assert.Equal(t, 480, schedule.ExpectedMinutes(nil, time.Friday))
	assert.Equal(t, 0, schedule.ExpectedMinutes(nil, time.Saturday))
	assert.Equal(t, 0, schedule.ExpectedMinutes(nil, time.Sunday))
	assert.Equal(t, 60, schedule.ExpectedMinutes(&schedule.WeeklySchedule{SundayMinutes: 60}, time.Sunday))
}
