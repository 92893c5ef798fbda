package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
)

type bankKey struct {
	employeeID string
	competency timebank.Competency
}

type MonthlyBankRepository struct {
	mu      sync.RWMutex
	entries map[bankKey]timebank.MonthlyBankEntry
}

func NewMonthlyBankRepository() *MonthlyBankRepository {
	return &MonthlyBankRepository{entries: make(map[bankKey]timebank.MonthlyBankEntry)}
}

// SumUpTo implements timebank.MonthlyBankRepository.
func (r *MonthlyBankRepository) SumUpTo(_ context.Context, employeeID string, upTo timebank.Competency) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for k, entry := range r.entries {
		if k.employeeID == employeeID && !upTo.Before(k.competency) {
			total += entry.BalanceMinutes
		}
	}
	return total, nil
}

// Upsert implements timebank.MonthlyBankRepository.
func (r *MonthlyBankRepository) Upsert(_ context.Context, entry timebank.MonthlyBankEntry) (timebank.MonthlyBankEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := bankKey{employeeID: entry.EmployeeID, competency: entry.Competency}
	if existing, ok := r.entries[k]; ok {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	}
	r.entries[k] = entry
	return entry, nil
}

// Get implements timebank.MonthlyBankRepository.
func (r *MonthlyBankRepository) Get(_ context.Context, employeeID string, competency timebank.Competency) (*timebank.MonthlyBankEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[bankKey{employeeID: employeeID, competency: competency}]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}
