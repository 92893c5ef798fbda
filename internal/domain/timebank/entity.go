package timebank

import (
	"fmt"
	"time"
)

// Competency is a calendar year-month bucket of banked minutes.
type Competency struct {
	Year  int
	Month time.Month
}

func CompetencyOf(t time.Time) Competency {
	return Competency{Year: t.Year(), Month: t.Month()}
}

// ParseCompetency reads the "YYYY-MM" form.
func ParseCompetency(s string) (Competency, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Competency{}, fmt.Errorf("invalid competency %q: %w", s, err)
	}
	return CompetencyOf(t), nil
}

func (c Competency) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}

// FirstDay returns the first day of the month at midnight UTC.
func (c Competency) FirstDay() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns the last day of the month at midnight UTC.
func (c Competency) LastDay() time.Time {
	return c.FirstDay().AddDate(0, 1, -1)
}

func (c Competency) Previous() Competency {
	return CompetencyOf(c.FirstDay().AddDate(0, -1, 0))
}

// Before reports whether c is an earlier month than other.
func (c Competency) Before(other Competency) bool {
	if c.Year != other.Year {
		return c.Year < other.Year
	}
	return c.Month < other.Month
}

// MonthlyBankEntry is the recomputed balance of one employee for one month.
// A recompute replaces BalanceMinutes, it never adds to it.
type MonthlyBankEntry struct {
	ID             string
	EmployeeID     string
	Competency     Competency
	BalanceMinutes int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DailyBalance is the outcome of the calculator for one calendar date.
type DailyBalance struct {
	Date            time.Time
	ExpectedMinutes int
	WorkedMinutes   int
	BalanceMinutes  int
}

// PeriodExtract aggregates daily balances over an inclusive date range.
type PeriodExtract struct {
	EmployeeID            string
	From                  time.Time
	To                    time.Time
	Days                  []DailyBalance
	PeriodTotalMinutes    int
	CarriedMinutes        int
	BankedTotalMinutes    int
	VacationAvailableDays int
}
