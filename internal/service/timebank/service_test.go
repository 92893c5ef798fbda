package timebank

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/timebank-backend-go/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "0198a0b2-7c1d-7a3e-9f10-123456789abc"

type fixedVacationBalance int

func (f fixedVacationBalance) AvailableDays(context.Context, string) (int, error) {
	return int(f), nil
}

type timebankFixture struct {
	svc     *TimebankServiceImpl
	punches *memory.PunchRecordRepository
	bank    *memory.MonthlyBankRepository
}

func newFixture(t *testing.T) timebankFixture {
	t.Helper()
	employees := memory.NewEmployeeRepository(employee.Employee{
		ID:               testEmployeeID,
		FullName:         "Bruno Lima",
		Email:            "bruno@cmlabs.co",
		Role:             employee.RoleEmployee,
		HireDate:         time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		EmploymentStatus: employee.EmploymentStatusActive,
	})
	punches := memory.NewPunchRecordRepository()
	bank := memory.NewMonthlyBankRepository()
	now := func() time.Time { return time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC) }

	svc := NewTimebankService(employees, memory.NewWeeklyScheduleRepository(), punches, bank, fixedVacationBalance(12), now)
	return timebankFixture{svc: svc, punches: punches, bank: bank}
}

// addDay stores a punch record without lunch.
func (f timebankFixture) addDay(t *testing.T, date time.Time, arrival, departure time.Duration) {
	t.Helper()
	record := timeclock.PunchRecord{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: testEmployeeID,
		Date:       date,
		Origin:     timeclock.OriginManual,
	}
	record.SetStage(timeclock.StageArrival, date.Add(arrival), nil)
	record.SetStage(timeclock.StageDeparture, date.Add(departure), nil)
	_, err := f.punches.Create(context.Background(), record)
	require.NoError(t, err)
}

func TestPeriodExtract_SumsDailyBalances(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.addDay(t, monday, 8*time.Hour, 17*time.Hour)                 // 540 worked, +60
	f.addDay(t, tuesday, 8*time.Hour, 15*time.Hour+30*time.Minute) // 450 worked, -30

	res, err := f.svc.PeriodExtract(ctx, timebank.PeriodExtractRequest{
		EmployeeID: testEmployeeID,
		From:       "2025-08-04",
		To:         "2025-08-05",
	})
	require.NoError(t, err)
	require.Len(t, res.PerDay, 2)
	assert.Equal(t, 60, res.PerDay[0].BalanceMinutes)
	assert.Equal(t, "Monday", res.PerDay[0].Weekday)
	assert.Equal(t, -30, res.PerDay[1].BalanceMinutes)
	assert.Equal(t, 30, res.PeriodTotalMinutes)
	assert.Equal(t, 0, res.CarriedMinutes)
	assert.Equal(t, 30, res.BankedTotalMinutes)
	assert.Equal(t, 12, res.VacationAvailableDays)
}

func TestPeriodExtract_CarriesForwardPriorCompetencies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.bank.Upsert(ctx, timebank.MonthlyBankEntry{EmployeeID: testEmployeeID, Competency: timebank.Competency{Year: 2025, Month: time.June}, BalanceMinutes: 100})
	require.NoError(t, err)
	_, err = f.bank.Upsert(ctx, timebank.MonthlyBankEntry{EmployeeID: testEmployeeID, Competency: timebank.Competency{Year: 2025, Month: time.July}, BalanceMinutes: -40})
	require.NoError(t, err)
	// The competency of the period itself is not carried.
	_, err = f.bank.Upsert(ctx, timebank.MonthlyBankEntry{EmployeeID: testEmployeeID, Competency: timebank.Competency{Year: 2025, Month: time.August}, BalanceMinutes: 999})
	require.NoError(t, err)

	f.addDay(t, monday, 8*time.Hour, 17*time.Hour)

	res, err := f.svc.PeriodExtract(ctx, timebank.PeriodExtractRequest{
		EmployeeID: testEmployeeID,
		From:       "2025-08-04",
		To:         "2025-08-04",
	})
	require.NoError(t, err)
	assert.Equal(t, 60, res.PeriodTotalMinutes)
	assert.Equal(t, 60, res.CarriedMinutes)
	assert.Equal(t, 120, res.BankedTotalMinutes)
}

func TestPeriodExtract_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.PeriodExtract(ctx, timebank.PeriodExtractRequest{
		EmployeeID: testEmployeeID,
		From:       "2025-08-05",
		To:         "2025-08-04",
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = f.svc.Extract(ctx, testEmployeeID, tuesday, monday)
	require.ErrorIs(t, err, timebank.ErrInvalidPeriod)

	_, err = f.svc.PeriodExtract(ctx, timebank.PeriodExtractRequest{
		EmployeeID: "0198a0b2-7c1d-7a3e-9f10-000000000000",
		From:       "2025-08-04",
		To:         "2025-08-05",
	})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestRecomputeMonthlyBank_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	july := timebank.Competency{Year: 2025, Month: time.July}

	// July 2025 has 23 weekdays on the default schedule.
	julyFirst := july.FirstDay()
	f.addDay(t, julyFirst, 8*time.Hour, 18*time.Hour) // +120 on a Tuesday
	want := 23*-480 + 600

	req := timebank.RecomputeRequest{EmployeeID: testEmployeeID, Competency: "2025-07"}
	first, err := f.svc.RecomputeMonthlyBank(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, want, first.BalanceMinutes)
	assert.Equal(t, "2025-07", first.Competency)

	second, err := f.svc.RecomputeMonthlyBank(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.BalanceMinutes, second.BalanceMinutes)

	stored, err := f.bank.Get(ctx, testEmployeeID, july)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, want, stored.BalanceMinutes)

	carried, err := f.bank.SumUpTo(ctx, testEmployeeID, july)
	require.NoError(t, err)
	assert.Equal(t, want, carried)
}

func TestRecomputeMonthlyBank_ReplacesAfterLedgerChange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := timebank.RecomputeRequest{EmployeeID: testEmployeeID, Competency: "2025-08"}

	before, err := f.svc.RecomputeMonthlyBank(ctx, req)
	require.NoError(t, err)

	f.addDay(t, monday, 8*time.Hour, 16*time.Hour)

	after, err := f.svc.RecomputeMonthlyBank(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, before.BalanceMinutes+480, after.BalanceMinutes)
}

func TestRecomputeMonthlyBank_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.RecomputeMonthlyBank(ctx, timebank.RecomputeRequest{EmployeeID: testEmployeeID, Competency: "2025-13"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = f.svc.RecomputeMonthlyBank(ctx, timebank.RecomputeRequest{EmployeeID: "0198a0b2-7c1d-7a3e-9f10-000000000000", Competency: "2025-07"})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestCompetency(t *testing.T) {
	c, err := timebank.ParseCompetency("2025-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12", c.Previous().String())
	assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), c.LastDay())
	assert.True(t, c.Previous().Before(c))
	assert.False(t, c.Before(c))

	feb := timebank.Competency{Year: 2024, Month: time.February}
	assert.Equal(t, 29, feb.LastDay().Day())
}
