package vacation

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/timebank-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmployeeID  = "0198a0b2-7c1d-7a3e-9f10-123456789abc"
	otherEmployeeID = "0198a0b2-7c1d-7a3e-9f10-abcdefabcdef"
)

func newTestService(t *testing.T) vacation.VacationService {
	t.Helper()
	employees := memory.NewEmployeeRepository(
		employee.Employee{
			ID:               testEmployeeID,
			FullName:         "Carla Dias",
			HireDate:         time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			EmploymentStatus: employee.EmploymentStatusActive,
		},
		employee.Employee{
			ID:               otherEmployeeID,
			FullName:         "Diego Alves",
			HireDate:         time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			EmploymentStatus: employee.EmploymentStatusActive,
		},
	)
	now := func() time.Time { return time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC) }
	return NewVacationService(memory.NewVacationRequestRepository(), employees, time.UTC, now)
}

func create(ctx context.Context, svc vacation.VacationService, employeeID, start, end string) (vacation.VacationRequestResponse, error) {
	return svc.CreateRequest(ctx, vacation.CreateVacationRequest{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
	})
}

func TestCreateRequest_Overlap(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := create(ctx, svc, testEmployeeID, "2025-08-01", "2025-08-10")
	require.NoError(t, err)
	assert.Equal(t, 10, first.DayCount)
	assert.Equal(t, vacation.StatusCreated, first.Status)

	_, err = create(ctx, svc, testEmployeeID, "2025-08-05", "2025-08-06")
	require.ErrorIs(t, err, vacation.ErrOverlappingVacation)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	// Inclusive bounds: sharing the last day overlaps.
	_, err = create(ctx, svc, testEmployeeID, "2025-08-10", "2025-08-12")
	require.ErrorIs(t, err, vacation.ErrOverlappingVacation)

	next, err := create(ctx, svc, testEmployeeID, "2025-08-11", "2025-08-12")
	require.NoError(t, err)
	assert.Equal(t, 2, next.DayCount)

	// Other employees are independent.
	_, err = create(ctx, svc, otherEmployeeID, "2025-08-05", "2025-08-06")
	require.NoError(t, err)
}

func TestCreateRequest_RejectedDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := create(ctx, svc, testEmployeeID, "2025-09-01", "2025-09-05")
	require.NoError(t, err)

	_, err = svc.DecideRequest(ctx, vacation.DecideVacationRequest{RequestID: first.ID, Approve: false})
	require.NoError(t, err)

	_, err = create(ctx, svc, testEmployeeID, "2025-09-02", "2025-09-03")
	require.NoError(t, err)
}

func TestCreateRequest_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	tests := []struct {
		name       string
		employeeID string
		start, end string
		kind       apperror.Kind
	}{
		{"same day", testEmployeeID, "2025-08-01", "2025-08-01", apperror.KindValidation},
		{"end before start", testEmployeeID, "2025-08-10", "2025-08-01", apperror.KindValidation},
		{"bad date", testEmployeeID, "2025/08/01", "2025-08-10", apperror.KindValidation},
		{"unknown employee", "0198a0b2-7c1d-7a3e-9f10-000000000000", "2025-08-01", "2025-08-10", apperror.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := create(ctx, svc, tt.employeeID, tt.start, tt.end)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
		})
	}
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	balance, err := svc.GetBalance(ctx, testEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, 30, balance.MonthsEmployed)
	assert.Equal(t, 30, balance.EntitledDays)
	assert.Equal(t, 30, balance.AvailableDays)

	created, err := create(ctx, svc, testEmployeeID, "2025-08-01", "2025-08-10")
	require.NoError(t, err)
	approved, err := svc.DecideRequest(ctx, vacation.DecideVacationRequest{RequestID: created.ID, Approve: true})
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusApproved, approved.Status)
	assert.NotNil(t, approved.DecidedAt)

	_, err = create(ctx, svc, testEmployeeID, "2025-09-01", "2025-09-05")
	require.NoError(t, err)

	available, err := svc.AvailableDays(ctx, testEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, 15, available)

	// Four months of tenure accrue ten days.
	other, err := svc.GetBalance(ctx, otherEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, 4, other.MonthsEmployed)
	assert.Equal(t, 10, other.AvailableDays)
}

func TestDecideRequest(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := create(ctx, svc, testEmployeeID, "2025-08-01", "2025-08-03")
	require.NoError(t, err)

	rejected, err := svc.DecideRequest(ctx, vacation.DecideVacationRequest{RequestID: created.ID, Approve: false})
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusRejected, rejected.Status)

	// Reapplying a decision overwrites the previous one.
	approved, err := svc.DecideRequest(ctx, vacation.DecideVacationRequest{RequestID: created.ID, Approve: true})
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusApproved, approved.Status)

	_, err = svc.DecideRequest(ctx, vacation.DecideVacationRequest{RequestID: "0198a0b2-7c1d-7a3e-9f10-000000000000", Approve: true})
	require.ErrorIs(t, err, vacation.ErrVacationRequestNotFound)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestListRequests(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := create(ctx, svc, testEmployeeID, "2025-08-01", "2025-08-03")
	require.NoError(t, err)
	_, err = create(ctx, svc, otherEmployeeID, "2025-08-01", "2025-08-03")
	require.NoError(t, err)
	_, err = create(ctx, svc, testEmployeeID, "2025-10-01", "2025-10-03")
	require.NoError(t, err)

	all, err := svc.ListRequests(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	id := testEmployeeID
	own, err := svc.ListRequests(ctx, &id)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "2025-10-01", own[0].StartDate)
}
