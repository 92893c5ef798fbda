package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/utils"
)

type punchKey struct {
	employeeID string
	date       string
}

// PunchRecordRepository serializes writers with a single mutex, so the
// uniqueness check in Create and the filled-count comparison in
// AdvanceStage happen atomically with the write.
type PunchRecordRepository struct {
	mu      sync.RWMutex
	records map[punchKey]timeclock.PunchRecord
}

func NewPunchRecordRepository() *PunchRecordRepository {
	return &PunchRecordRepository{records: make(map[punchKey]timeclock.PunchRecord)}
}

func keyOf(employeeID string, date time.Time) punchKey {
	return punchKey{employeeID: employeeID, date: date.Format(utils.DateLayout)}
}

// GetByEmployeeAndDate implements timeclock.PunchRecordRepository.
func (r *PunchRecordRepository) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*timeclock.PunchRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[keyOf(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Create implements timeclock.PunchRecordRepository.
func (r *PunchRecordRepository) Create(_ context.Context, record timeclock.PunchRecord) (timeclock.PunchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := keyOf(record.EmployeeID, record.Date)
	if _, exists := r.records[k]; exists {
		return timeclock.PunchRecord{}, timeclock.ErrPunchRecordExists
	}
	r.records[k] = record
	return record, nil
}

// AdvanceStage implements timeclock.PunchRecordRepository.
func (r *PunchRecordRepository) AdvanceStage(_ context.Context, record timeclock.PunchRecord, expectedFilled int) (timeclock.PunchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := keyOf(record.EmployeeID, record.Date)
	stored, ok := r.records[k]
	if !ok {
		return timeclock.PunchRecord{}, timeclock.ErrPunchRecordNotFound
	}
	if stored.FilledCount() != expectedFilled {
		return timeclock.PunchRecord{}, timeclock.ErrConcurrentPunch
	}
	r.records[k] = record
	return record, nil
}

// ListByEmployeeAndRange implements timeclock.PunchRecordRepository.
func (r *PunchRecordRepository) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]timeclock.PunchRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	from, to = utils.DateOf(from), utils.DateOf(to)
	var result []timeclock.PunchRecord
	for k, record := range r.records {
		if k.employeeID != employeeID {
			continue
		}
		if record.Date.Before(from) || record.Date.After(to) {
			continue
		}
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}
