package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type punchRecordRepositoryImpl struct {
	db *database.DB
}

func NewPunchRecordRepository(db *database.DB) timeclock.PunchRecordRepository {
	return &punchRecordRepositoryImpl{db: db}
}

const punchRecordColumns = `id, employee_id, date, arrival, lunch_start, lunch_end, departure,
	arrival_latitude, arrival_longitude, lunch_start_latitude, lunch_start_longitude,
	lunch_end_latitude, lunch_end_longitude, departure_latitude, departure_longitude,
	origin, note, created_at, updated_at`

func scanPunchRecord(row pgx.Row) (timeclock.PunchRecord, error) {
	var r timeclock.PunchRecord
	var coords [8]*float64
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.Date, &r.Arrival, &r.LunchStart, &r.LunchEnd, &r.Departure,
		&coords[0], &coords[1], &coords[2], &coords[3],
		&coords[4], &coords[5], &coords[6], &coords[7],
		&r.Origin, &r.Note, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return timeclock.PunchRecord{}, err
	}
	r.ArrivalCoords = toCoordinates(coords[0], coords[1])
	r.LunchStartCoords = toCoordinates(coords[2], coords[3])
	r.LunchEndCoords = toCoordinates(coords[4], coords[5])
	r.DepartureCoords = toCoordinates(coords[6], coords[7])
	return r, nil
}

func toCoordinates(lat, lng *float64) *timeclock.Coordinates {
	if lat == nil || lng == nil {
		return nil
	}
	return &timeclock.Coordinates{Latitude: *lat, Longitude: *lng}
}

func splitCoordinates(c *timeclock.Coordinates) (*float64, *float64) {
	if c == nil {
		return nil, nil
	}
	return &c.Latitude, &c.Longitude
}

// stageArgs flattens the mutable columns in table order.
func stageArgs(r timeclock.PunchRecord) []any {
	arrLat, arrLng := splitCoordinates(r.ArrivalCoords)
	lsLat, lsLng := splitCoordinates(r.LunchStartCoords)
	leLat, leLng := splitCoordinates(r.LunchEndCoords)
	depLat, depLng := splitCoordinates(r.DepartureCoords)
	return []any{
		r.Arrival, r.LunchStart, r.LunchEnd, r.Departure,
		arrLat, arrLng, lsLat, lsLng, leLat, leLng, depLat, depLng,
		r.FilledCount(), r.Note, r.UpdatedAt,
	}
}

// GetByEmployeeAndDate implements timeclock.PunchRecordRepository.
func (p *punchRecordRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timeclock.PunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + punchRecordColumns + ` FROM punch_records WHERE employee_id = $1 AND date = $2`

	record, err := scanPunchRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get punch record: %w", err)
	}

	return &record, nil
}

// Create implements timeclock.PunchRecordRepository.
// The unique (employee_id, date) constraint lets exactly one of two
// concurrent first punches succeed.
func (p *punchRecordRepositoryImpl) Create(ctx context.Context, record timeclock.PunchRecord) (timeclock.PunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO punch_records (
			arrival, lunch_start, lunch_end, departure,
			arrival_latitude, arrival_longitude, lunch_start_latitude, lunch_start_longitude,
			lunch_end_latitude, lunch_end_longitude, departure_latitude, departure_longitude,
			filled_count, note, updated_at,
			id, employee_id, date, origin, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15,
			$16, $17, $18, $19, $20
		)
		RETURNING ` + punchRecordColumns

	args := append(stageArgs(record), record.ID, record.EmployeeID, record.Date, record.Origin, record.CreatedAt)

	created, err := scanPunchRecord(q.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return timeclock.PunchRecord{}, timeclock.ErrPunchRecordExists
		}
		return timeclock.PunchRecord{}, fmt.Errorf("failed to create punch record: %w", err)
	}

	return created, nil
}

// AdvanceStage implements timeclock.PunchRecordRepository.
// The filled_count predicate is the compare-and-swap: a writer that read a
// stale record matches no row.
func (p *punchRecordRepositoryImpl) AdvanceStage(ctx context.Context, record timeclock.PunchRecord, expectedFilled int) (timeclock.PunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE punch_records
		SET arrival = $1, lunch_start = $2, lunch_end = $3, departure = $4,
			arrival_latitude = $5, arrival_longitude = $6,
			lunch_start_latitude = $7, lunch_start_longitude = $8,
			lunch_end_latitude = $9, lunch_end_longitude = $10,
			departure_latitude = $11, departure_longitude = $12,
			filled_count = $13, note = $14, updated_at = $15
		WHERE employee_id = $16 AND date = $17 AND filled_count = $18
		RETURNING ` + punchRecordColumns

	args := append(stageArgs(record), record.EmployeeID, record.Date, expectedFilled)

	updated, err := scanPunchRecord(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeclock.PunchRecord{}, timeclock.ErrConcurrentPunch
		}
		return timeclock.PunchRecord{}, fmt.Errorf("failed to advance punch record: %w", err)
	}

	return updated, nil
}

// ListByEmployeeAndRange implements timeclock.PunchRecordRepository.
func (p *punchRecordRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]timeclock.PunchRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + punchRecordColumns + `
		FROM punch_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch records: %w", err)
	}
	defer rows.Close()

	var records []timeclock.PunchRecord
	for rows.Next() {
		record, err := scanPunchRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
