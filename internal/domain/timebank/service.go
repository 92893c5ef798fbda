package timebank

import (
	"context"
	"time"
)

// TimebankService turns punches and schedules into the time-bank ledger.
type TimebankService interface {
	// PeriodExtract computes the per-day balances of [from, to] plus the carried bank.
	PeriodExtract(ctx context.Context, req PeriodExtractRequest) (PeriodExtractResponse, error)

	// RecomputeMonthlyBank recalculates and replaces one competency's stored balance.
	RecomputeMonthlyBank(ctx context.Context, req RecomputeRequest) (RecomputeResponse, error)

	// Extract is the domain form of PeriodExtract used by report delivery.
	Extract(ctx context.Context, employeeID string, from, to time.Time) (PeriodExtract, error)
}
