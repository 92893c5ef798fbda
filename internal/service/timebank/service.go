package timebank

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
)

// VacationBalance supplies the available vacation days shown in an extract.
type VacationBalance interface {
	AvailableDays(ctx context.Context, employeeID string) (int, error)
}

type TimebankServiceImpl struct {
	employee.EmployeeRepository
	schedule.WeeklyScheduleRepository
	timeclock.PunchRecordRepository
	timebank.MonthlyBankRepository
	vacations VacationBalance
	now       func() time.Time
}

func NewTimebankService(
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WeeklyScheduleRepository,
	punchRecordRepo timeclock.PunchRecordRepository,
	monthlyBankRepo timebank.MonthlyBankRepository,
	vacations VacationBalance,
	now func() time.Time,
) *TimebankServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &TimebankServiceImpl{
		EmployeeRepository:       employeeRepo,
		WeeklyScheduleRepository: scheduleRepo,
		PunchRecordRepository:    punchRecordRepo,
		MonthlyBankRepository:    monthlyBankRepo,
		vacations:                vacations,
		now:                      now,
	}
}

var _ timebank.TimebankService = (*TimebankServiceImpl)(nil)

// PeriodExtract implements timebank.TimebankService.
func (s *TimebankServiceImpl) PeriodExtract(ctx context.Context, req timebank.PeriodExtractRequest) (timebank.PeriodExtractResponse, error) {
	if err := req.Validate(); err != nil {
		return timebank.PeriodExtractResponse{}, err
	}

	from, _ := time.Parse(utils.DateLayout, req.From)
	to, _ := time.Parse(utils.DateLayout, req.To)

	extract, err := s.Extract(ctx, req.EmployeeID, from, to)
	if err != nil {
		return timebank.PeriodExtractResponse{}, err
	}

	perDay := make([]timebank.DailyBalanceResponse, 0, len(extract.Days))
	for _, day := range extract.Days {
		perDay = append(perDay, timebank.DailyBalanceResponse{
			Date:            day.Date.Format(utils.DateLayout),
			Weekday:         day.Date.Weekday().String(),
			ExpectedMinutes: day.ExpectedMinutes,
			WorkedMinutes:   day.WorkedMinutes,
			BalanceMinutes:  day.BalanceMinutes,
		})
	}

	return timebank.PeriodExtractResponse{
		EmployeeID:            extract.EmployeeID,
		From:                  extract.From.Format(utils.DateLayout),
		To:                    extract.To.Format(utils.DateLayout),
		PerDay:                perDay,
		PeriodTotalMinutes:    extract.PeriodTotalMinutes,
		CarriedMinutes:        extract.CarriedMinutes,
		BankedTotalMinutes:    extract.BankedTotalMinutes,
		VacationAvailableDays: extract.VacationAvailableDays,
	}, nil
}

// Extract implements timebank.TimebankService.
func (s *TimebankServiceImpl) Extract(ctx context.Context, employeeID string, from, to time.Time) (timebank.PeriodExtract, error) {
	from, to = utils.DateOf(from), utils.DateOf(to)
	if from.After(to) {
		return timebank.PeriodExtract{}, timebank.ErrInvalidPeriod
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return timebank.PeriodExtract{}, err
	}

	days, total, err := s.dailyBalances(ctx, employeeID, from, to)
	if err != nil {
		return timebank.PeriodExtract{}, err
	}

	carried, err := s.MonthlyBankRepository.SumUpTo(ctx, employeeID, timebank.CompetencyOf(from).Previous())
	if err != nil {
		return timebank.PeriodExtract{}, fmt.Errorf("failed to sum monthly bank: %w", err)
	}

	extract := timebank.PeriodExtract{
		EmployeeID:         employeeID,
		From:               from,
		To:                 to,
		Days:               days,
		PeriodTotalMinutes: total,
		CarriedMinutes:     carried,
		BankedTotalMinutes: carried + total,
	}

	if s.vacations != nil {
		available, err := s.vacations.AvailableDays(ctx, employeeID)
		if err != nil {
			return timebank.PeriodExtract{}, fmt.Errorf("failed to compute vacation balance: %w", err)
		}
		extract.VacationAvailableDays = available
	}

	return extract, nil
}

// RecomputeMonthlyBank implements timebank.TimebankService.
func (s *TimebankServiceImpl) RecomputeMonthlyBank(ctx context.Context, req timebank.RecomputeRequest) (timebank.RecomputeResponse, error) {
	if err := req.Validate(); err != nil {
		return timebank.RecomputeResponse{}, err
	}

	competency, err := timebank.ParseCompetency(req.Competency)
	if err != nil {
		return timebank.RecomputeResponse{}, timebank.ErrInvalidCompetency
	}

	entry, err := s.Recompute(ctx, req.EmployeeID, competency)
	if err != nil {
		return timebank.RecomputeResponse{}, err
	}

	return timebank.RecomputeResponse{
		EmployeeID:     entry.EmployeeID,
		Competency:     entry.Competency.String(),
		BalanceMinutes: entry.BalanceMinutes,
		UpdatedAt:      entry.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// Recompute sums the balances of every day of competency and replaces the
// stored entry. Running it again without ledger changes stores the same value.
func (s *TimebankServiceImpl) Recompute(ctx context.Context, employeeID string, competency timebank.Competency) (timebank.MonthlyBankEntry, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return timebank.MonthlyBankEntry{}, err
	}

	_, total, err := s.dailyBalances(ctx, employeeID, competency.FirstDay(), competency.LastDay())
	if err != nil {
		return timebank.MonthlyBankEntry{}, err
	}

	now := s.now().UTC()
	entry, err := s.MonthlyBankRepository.Upsert(ctx, timebank.MonthlyBankEntry{
		ID:             uuid.Must(uuid.NewV7()).String(),
		EmployeeID:     employeeID,
		Competency:     competency,
		BalanceMinutes: total,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return timebank.MonthlyBankEntry{}, fmt.Errorf("failed to upsert monthly bank: %w", err)
	}

	slog.InfoContext(ctx, "monthly bank recomputed",
		"employee_id", employeeID,
		"competency", competency.String(),
		"balance_min", total,
	)

	return entry, nil
}

// dailyBalances runs the calculator over every date in [from, to].
func (s *TimebankServiceImpl) dailyBalances(ctx context.Context, employeeID string, from, to time.Time) ([]timebank.DailyBalance, int, error) {
	sched, err := s.WeeklyScheduleRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load schedule: %w", err)
	}

	records, err := s.PunchRecordRepository.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load punch records: %w", err)
	}
	byDate := make(map[string]*timeclock.PunchRecord, len(records))
	for i := range records {
		byDate[records[i].Date.Format(utils.DateLayout)] = &records[i]
	}

	days := make([]timebank.DailyBalance, 0, utils.DaysInclusive(from, to))
	total := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		balance := DailyBalance(sched, d, byDate[d.Format(utils.DateLayout)])
		days = append(days, balance)
		total += balance.BalanceMinutes
	}

	return days, total, nil
}
