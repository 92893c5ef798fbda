package vacation

import (
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

var (
	accrualPerMonth = decimal.RequireFromString(vacation.AccrualPerMonth)
	maxEntitled     = decimal.NewFromInt(vacation.MaxEntitledDays)
)

// Accrual is the entitlement snapshot of an employee on a given day.
type Accrual struct {
	MonthsEmployed int
	EntitledDays   int
	ConsumedDays   int
	AvailableDays  int
}

// EntitledDays returns min(30, floor(months * 2.5)).
func EntitledDays(monthsEmployed int) int {
	if monthsEmployed <= 0 {
		return 0
	}
	earned := decimal.NewFromInt(int64(monthsEmployed)).Mul(accrualPerMonth).Floor()
	return int(decimal.Min(earned, maxEntitled).IntPart())
}

// AvailableDays clamps entitled minus consumed to [0, 30].
func AvailableDays(entitled, consumed int) int {
	return max(0, min(vacation.MaxEntitledDays, entitled-consumed))
}

// ComputeAccrual derives the full snapshot from the hire date.
func ComputeAccrual(hireDate, today time.Time, consumedDays int) Accrual {
	months := utils.FullMonthsBetween(hireDate, today)
	entitled := EntitledDays(months)
	return Accrual{
		MonthsEmployed: months,
		EntitledDays:   entitled,
		ConsumedDays:   consumedDays,
		AvailableDays:  AvailableDays(entitled, consumedDays),
	}
}
