package postgresql_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/timebank-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	ctx := context.Background()

	setup, err := NewTestDatabase(ctx)
	if errors.Is(err, ErrNoTestDatabase) {
		t.Skip(err.Error())
	}
	require.NoError(t, err)
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)
	return setup
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func createEmployee(t *testing.T, ctx context.Context, setup *TestDatabaseSetup) employee.Employee {
	t.Helper()
	id := newID()
	emp, err := postgresql.NewEmployeeRepository(setup.DB).Create(ctx, employee.Employee{
		ID:               id,
		FullName:         "Test Employee",
		Email:            id + "@cmlabs.co",
		Role:             employee.RoleEmployee,
		HireDate:         time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		EmploymentStatus: employee.EmploymentStatusActive,
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	setup := setupTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	emp := createEmployee(t, ctx, setup)

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.Email, got.Email)
	assert.Equal(t, "2024-01-15", got.HireDate.Format("2006-01-02"))

	_, err = repo.GetByID(ctx, newID())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestPunchRecordRepository_CreateAndAdvance(t *testing.T) {
	setup := setupTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPunchRecordRepository(setup.DB)
	emp := createEmployee(t, ctx, setup)

	date := time.Date(2025, time.August, 4, 0, 0, 0, 0, time.UTC)
	arrival := time.Date(2025, time.August, 4, 11, 0, 0, 0, time.UTC)
	record := timeclock.PunchRecord{
		ID:         newID(),
		EmployeeID: emp.ID,
		Date:       date,
		Origin:     timeclock.OriginWeb,
		CreatedAt:  arrival,
		UpdatedAt:  arrival,
	}
	record.SetStage(timeclock.StageArrival, arrival, &timeclock.Coordinates{Latitude: -23.5, Longitude: -46.6})
	record.AppendNote("arrival via button")

	created, err := repo.Create(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, 1, created.FilledCount())
	require.NotNil(t, created.ArrivalCoords)
	assert.Equal(t, -23.5, created.ArrivalCoords.Latitude)

	duplicate := record
	duplicate.ID = newID()
	_, err = repo.Create(ctx, duplicate)
	assert.ErrorIs(t, err, timeclock.ErrPunchRecordExists)

	next := created
	next.SetStage(timeclock.StageLunchStart, arrival.Add(4*time.Hour), nil)
	advanced, err := repo.AdvanceStage(ctx, next, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, advanced.FilledCount())

	// A writer holding the stale fill count loses.
	_, err = repo.AdvanceStage(ctx, next, 1)
	assert.ErrorIs(t, err, timeclock.ErrConcurrentPunch)

	loaded, err := repo.GetByEmployeeAndDate(ctx, emp.ID, date)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.LunchStart.Equal(arrival.Add(4*time.Hour)))

	missing, err := repo.GetByEmployeeAndDate(ctx, emp.ID, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, missing)

	records, err := repo.ListByEmployeeAndRange(ctx, emp.ID, date.AddDate(0, 0, -1), date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestPunchRecordRepository_ConcurrentFirstPunch(t *testing.T) {
	setup := setupTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPunchRecordRepository(setup.DB)
	emp := createEmployee(t, ctx, setup)

	date := time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)
	const writers = 5
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			record := timeclock.PunchRecord{ID: newID(), EmployeeID: emp.ID, Date: date, Origin: timeclock.OriginWeb}
			record.SetStage(timeclock.StageArrival, date.Add(11*time.Hour), nil)
			_, errs[i] = repo.Create(ctx, record)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, timeclock.ErrPunchRecordExists)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestWeeklyScheduleRepository_Upsert(t *testing.T) {
	setup := setupTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewWeeklyScheduleRepository(setup.DB)
	emp := createEmployee(t, ctx, setup)

	none, err := repo.GetByEmployeeID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	first, err := repo.Upsert(ctx, schedule.WeeklySchedule{ID: newID(), EmployeeID: emp.ID, MondayMinutes: 480})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, schedule.WeeklySchedule{ID: newID(), EmployeeID: emp.ID, MondayMinutes: 360, SaturdayMinutes: 120})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.GetByEmployeeID(ctx, emp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 360, got.MondayMinutes)
	assert.Equal(t, 120, got.SaturdayMinutes)
}

func TestMonthlyBankRepository_UpsertAndSum(t *testing.T) {
	setup := setupTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewMonthlyBankRepository(setup.DB)
	emp := createEmployee(t, ctx, setup)

	june := timebank.Competency{Year: 2025, Month: time.June}
	july := timebank.Competency{Year: 2025, Month: time.July}

	for _, entry := range []timebank.MonthlyBankEntry{
		{ID: newID(), EmployeeID: emp.ID, Competency: june, BalanceMinutes: 90},
		{ID: newID(), EmployeeID: emp.ID, Competency: july, BalanceMinutes: -30},
		{ID: newID(), EmployeeID: emp.ID, Competency: july, BalanceMinutes: -45},
	} {
		_, err := repo.Upsert(ctx, entry)
		require.NoError(t, err)
	}

	stored, err := repo.Get(ctx, emp.ID, july)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, -45, stored.BalanceMinutes)
	assert.Equal(t, july, stored.Competency)

	total, err := repo.SumUpTo(ctx, emp.ID, june)
	require.NoError(t, err)
	assert.Equal(t, 90, total)

	total, err = repo.SumUpTo(ctx, emp.ID, july)
	require.NoError(t, err)
	assert.Equal(t, 45, total)

	missing, err := repo.Get(ctx, emp.ID, timebank.Competency{Year: 2025, Month: time.May})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVacationRequestRepository(t *testing.T) {
	setup := setupTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewVacationRequestRepository(setup.DB)
	emp := createEmployee(t, ctx, setup)

	day := func(d int) time.Time { return time.Date(2025, time.August, d, 0, 0, 0, 0, time.UTC) }
	request := vacation.VacationRequest{
		ID:         newID(),
		EmployeeID: emp.ID,
		StartDate:  day(1),
		EndDate:    day(10),
		DayCount:   10,
		Status:     vacation.StatusCreated,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	created, err := repo.Create(ctx, request)
	require.NoError(t, err)
	assert.True(t, created.EndDate.Equal(day(10)))

	overlapping := request
	overlapping.ID = newID()
	overlapping.StartDate, overlapping.EndDate, overlapping.DayCount = day(5), day(6), 2
	_, err = repo.Create(ctx, overlapping)
	assert.ErrorIs(t, err, vacation.ErrOverlappingVacation)

	exists, err := repo.HasOverlapping(ctx, emp.ID, day(11), day(12), vacation.ActiveStatuses)
	require.NoError(t, err)
	assert.False(t, exists)

	days, err := repo.SumDays(ctx, emp.ID, vacation.ActiveStatuses)
	require.NoError(t, err)
	assert.Equal(t, 10, days)

	decided, err := repo.UpdateStatus(ctx, created.ID, vacation.StatusRejected, time.Now())
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusRejected, decided.Status)
	assert.NotNil(t, decided.DecidedAt)

	days, err = repo.SumDays(ctx, emp.ID, vacation.ActiveStatuses)
	require.NoError(t, err)
	assert.Equal(t, 0, days)

	_, err = repo.UpdateStatus(ctx, newID(), vacation.StatusApproved, time.Now())
	assert.ErrorIs(t, err, vacation.ErrVacationRequestNotFound)

	list, err := repo.List(ctx, &emp.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
