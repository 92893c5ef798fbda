package timeclock

import (
	"context"
	"time"
)

// PunchRecordRepository is the punch ledger. Writes are single-writer per
// (employee, date): Create relies on the uniqueness of that pair and
// AdvanceStage is a compare-and-swap on the number of filled stages.
type PunchRecordRepository interface {
	// GetByEmployeeAndDate returns nil, nil when there is no record for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*PunchRecord, error)

	// Create stores a new record. Returns ErrPunchRecordExists when the day is taken.
	Create(ctx context.Context, record PunchRecord) (PunchRecord, error)

	// AdvanceStage persists record only if the stored record still has
	// expectedFilled stages set. Returns ErrConcurrentPunch otherwise.
	AdvanceStage(ctx context.Context, record PunchRecord, expectedFilled int) (PunchRecord, error)

	// ListByEmployeeAndRange returns the records in [from, to] ordered by date.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]PunchRecord, error)
}
