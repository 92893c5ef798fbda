package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type monthlyBankRepositoryImpl struct {
	db *database.DB
}

func NewMonthlyBankRepository(db *database.DB) timebank.MonthlyBankRepository {
	return &monthlyBankRepositoryImpl{db: db}
}

const monthlyBankColumns = `id, employee_id, competency, balance_minutes, created_at, updated_at`

func scanMonthlyBankEntry(row pgx.Row) (timebank.MonthlyBankEntry, error) {
	var e timebank.MonthlyBankEntry
	var competency string
	if err := row.Scan(&e.ID, &e.EmployeeID, &competency, &e.BalanceMinutes, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return timebank.MonthlyBankEntry{}, err
	}
	c, err := timebank.ParseCompetency(competency)
	if err != nil {
		return timebank.MonthlyBankEntry{}, err
	}
	e.Competency = c
	return e, nil
}

// SumUpTo implements timebank.MonthlyBankRepository.
// Competencies are stored as zero-padded "YYYY-MM", so text order is month order.
func (m *monthlyBankRepositoryImpl) SumUpTo(ctx context.Context, employeeID string, upTo timebank.Competency) (int, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT COALESCE(SUM(balance_minutes), 0)
		FROM monthly_bank_entries
		WHERE employee_id = $1 AND competency <= $2
	`

	var total int64
	if err := q.QueryRow(ctx, query, employeeID, upTo.String()).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum monthly bank entries: %w", err)
	}

	return int(total), nil
}

// Upsert implements timebank.MonthlyBankRepository.
// A single INSERT ... ON CONFLICT statement is atomic per (employee, competency).
func (m *monthlyBankRepositoryImpl) Upsert(ctx context.Context, entry timebank.MonthlyBankEntry) (timebank.MonthlyBankEntry, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO monthly_bank_entries (id, employee_id, competency, balance_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, competency) DO UPDATE SET
			balance_minutes = EXCLUDED.balance_minutes,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + monthlyBankColumns

	saved, err := scanMonthlyBankEntry(q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.Competency.String(), entry.BalanceMinutes, entry.CreatedAt, entry.UpdatedAt,
	))
	if err != nil {
		return timebank.MonthlyBankEntry{}, fmt.Errorf("failed to upsert monthly bank entry: %w", err)
	}

	return saved, nil
}

// Get implements timebank.MonthlyBankRepository.
func (m *monthlyBankRepositoryImpl) Get(ctx context.Context, employeeID string, competency timebank.Competency) (*timebank.MonthlyBankEntry, error) {
	q := GetQuerier(ctx, m.db)

	query := `SELECT ` + monthlyBankColumns + ` FROM monthly_bank_entries WHERE employee_id = $1 AND competency = $2`

	entry, err := scanMonthlyBankEntry(q.QueryRow(ctx, query, employeeID, competency.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly bank entry: %w", err)
	}

	return &entry, nil
}
