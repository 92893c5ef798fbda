package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vacationRequestRepositoryImpl struct {
	db *database.DB
}

func NewVacationRequestRepository(db *database.DB) vacation.VacationRequestRepository {
	return &vacationRequestRepositoryImpl{db: db}
}

const vacationRequestColumns = `id, employee_id, start_date, end_date, day_count, status, reason,
	decided_at, created_at, updated_at`

func scanVacationRequest(row pgx.Row) (vacation.VacationRequest, error) {
	var r vacation.VacationRequest
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.StartDate, &r.EndDate, &r.DayCount, &r.Status, &r.Reason,
		&r.DecidedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func statusStrings(statuses []vacation.Status) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

// Create implements vacation.VacationRequestRepository.
// A transaction-scoped advisory lock on the employee serializes the overlap
// check with the insert.
func (v *vacationRequestRepositoryImpl) Create(ctx context.Context, request vacation.VacationRequest) (vacation.VacationRequest, error) {
	var created vacation.VacationRequest

	err := WithTransaction(ctx, v.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)

		if _, err := tx.Exec(txCtx, `SELECT pg_advisory_xact_lock(hashtext($1))`, request.EmployeeID); err != nil {
			return fmt.Errorf("failed to lock employee vacations: %w", err)
		}

		overlapping, err := v.HasOverlapping(txCtx, request.EmployeeID, request.StartDate, request.EndDate, vacation.ActiveStatuses)
		if err != nil {
			return err
		}
		if overlapping {
			return vacation.ErrOverlappingVacation
		}

		query := `
			INSERT INTO vacation_requests (
				id, employee_id, start_date, end_date, day_count, status, reason, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING ` + vacationRequestColumns

		created, err = scanVacationRequest(tx.QueryRow(txCtx, query,
			request.ID, request.EmployeeID, request.StartDate, request.EndDate, request.DayCount,
			request.Status, request.Reason, request.CreatedAt, request.UpdatedAt,
		))
		if err != nil {
			return fmt.Errorf("failed to insert vacation request: %w", err)
		}
		return nil
	})
	if err != nil {
		return vacation.VacationRequest{}, err
	}

	return created, nil
}

// GetByID implements vacation.VacationRequestRepository.
func (v *vacationRequestRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, v.db)

	query := `SELECT ` + vacationRequestColumns + ` FROM vacation_requests WHERE id = $1`

	request, err := scanVacationRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.VacationRequest{}, vacation.ErrVacationRequestNotFound
		}
		return vacation.VacationRequest{}, fmt.Errorf("failed to get vacation request: %w", err)
	}

	return request, nil
}

// List implements vacation.VacationRequestRepository.
func (v *vacationRequestRepositoryImpl) List(ctx context.Context, employeeID *string) ([]vacation.VacationRequest, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		SELECT ` + vacationRequestColumns + `
		FROM vacation_requests
		WHERE ($1::uuid IS NULL OR employee_id = $1::uuid)
		ORDER BY created_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}
	defer rows.Close()

	var requests []vacation.VacationRequest
	for rows.Next() {
		request, err := scanVacationRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation request: %w", err)
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateStatus implements vacation.VacationRequestRepository.
func (v *vacationRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status vacation.Status, decidedAt time.Time) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		UPDATE vacation_requests
		SET status = $1, decided_at = $2, updated_at = $2
		WHERE id = $3
		RETURNING ` + vacationRequestColumns

	updated, err := scanVacationRequest(q.QueryRow(ctx, query, status, decidedAt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.VacationRequest{}, vacation.ErrVacationRequestNotFound
		}
		return vacation.VacationRequest{}, fmt.Errorf("failed to update vacation request status: %w", err)
	}

	return updated, nil
}

// SumDays implements vacation.VacationRequestRepository.
func (v *vacationRequestRepositoryImpl) SumDays(ctx context.Context, employeeID string, statuses []vacation.Status) (int, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		SELECT COALESCE(SUM(day_count), 0)
		FROM vacation_requests
		WHERE employee_id = $1 AND status = ANY($2)
	`

	var total int64
	if err := q.QueryRow(ctx, query, employeeID, statusStrings(statuses)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum vacation days: %w", err)
	}

	return int(total), nil
}

// HasOverlapping implements vacation.VacationRequestRepository.
func (v *vacationRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time, statuses []vacation.Status) (bool, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM vacation_requests
			WHERE employee_id = $1
			  AND status = ANY($2)
			  AND start_date <= $4
			  AND $3 <= end_date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, statusStrings(statuses), start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping vacations: %w", err)
	}

	return exists, nil
}
