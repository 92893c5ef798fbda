package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type weeklyScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWeeklyScheduleRepository(db *database.DB) schedule.WeeklyScheduleRepository {
	return &weeklyScheduleRepositoryImpl{db: db}
}

const weeklyScheduleColumns = `id, employee_id, monday_minutes, tuesday_minutes, wednesday_minutes,
	thursday_minutes, friday_minutes, saturday_minutes, sunday_minutes, created_at, updated_at`

func scanWeeklySchedule(row pgx.Row) (schedule.WeeklySchedule, error) {
	var s schedule.WeeklySchedule
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.MondayMinutes, &s.TuesdayMinutes, &s.WednesdayMinutes,
		&s.ThursdayMinutes, &s.FridayMinutes, &s.SaturdayMinutes, &s.SundayMinutes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByEmployeeID implements schedule.WeeklyScheduleRepository.
func (w *weeklyScheduleRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (*schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `SELECT ` + weeklyScheduleColumns + ` FROM weekly_schedules WHERE employee_id = $1`

	s, err := scanWeeklySchedule(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weekly schedule: %w", err)
	}

	return &s, nil
}

// Upsert implements schedule.WeeklyScheduleRepository.
func (w *weeklyScheduleRepositoryImpl) Upsert(ctx context.Context, s schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO weekly_schedules (
			id, employee_id, monday_minutes, tuesday_minutes, wednesday_minutes,
			thursday_minutes, friday_minutes, saturday_minutes, sunday_minutes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id) DO UPDATE SET
			monday_minutes = EXCLUDED.monday_minutes,
			tuesday_minutes = EXCLUDED.tuesday_minutes,
			wednesday_minutes = EXCLUDED.wednesday_minutes,
			thursday_minutes = EXCLUDED.thursday_minutes,
			friday_minutes = EXCLUDED.friday_minutes,
			saturday_minutes = EXCLUDED.saturday_minutes,
			sunday_minutes = EXCLUDED.sunday_minutes,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + weeklyScheduleColumns

	saved, err := scanWeeklySchedule(q.QueryRow(ctx, query,
		s.ID, s.EmployeeID, s.MondayMinutes, s.TuesdayMinutes, s.WednesdayMinutes,
		s.ThursdayMinutes, s.FridayMinutes, s.SaturdayMinutes, s.SundayMinutes, s.CreatedAt, s.UpdatedAt,
	))
	if err != nil {
		return schedule.WeeklySchedule{}, fmt.Errorf("failed to upsert weekly schedule: %w", err)
	}

	return saved, nil
}
