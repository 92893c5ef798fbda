package timebank

import (
	"context"
)

// MonthlyBankRepository stores one entry per (employee, competency).
type MonthlyBankRepository interface {
	// SumUpTo adds the stored balances of every competency up to and including upTo.
	SumUpTo(ctx context.Context, employeeID string, upTo Competency) (int, error)

	// Upsert atomically replaces the entry for (employee, competency).
	Upsert(ctx context.Context, entry MonthlyBankEntry) (MonthlyBankEntry, error)

	// Get returns nil, nil when the month was never recomputed.
	Get(ctx context.Context, employeeID string, competency Competency) (*MonthlyBankEntry, error)
}
