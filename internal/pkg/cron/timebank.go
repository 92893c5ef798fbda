package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"golang.org/x/sync/errgroup"
)

// Recomputer stores the monthly bank entry of one employee and competency.
type Recomputer interface {
	Recompute(ctx context.Context, employeeID string, competency timebank.Competency) (timebank.MonthlyBankEntry, error)
}

type TimebankJobs struct {
	employeeRepo employee.EmployeeRepository
	recomputer   Recomputer
	location     *time.Location
	workers      int
	now          func() time.Time
}

func NewTimebankJobs(
	employeeRepo employee.EmployeeRepository,
	recomputer Recomputer,
	location *time.Location,
	workers int,
	now func() time.Time,
) *TimebankJobs {
	if workers < 1 {
		workers = 1
	}
	return &TimebankJobs{
		employeeRepo: employeeRepo,
		recomputer:   recomputer,
		location:     location,
		workers:      workers,
		now:          now,
	}
}

func (j *TimebankJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("recompute_previous_competency", interval, j.RecomputePreviousCompetency)
}

// RecomputePreviousCompetency refreshes last month's bank entry for every
// active employee. A failing employee does not stop the others.
func (j *TimebankJobs) RecomputePreviousCompetency(ctx context.Context) error {
	competency := timebank.CompetencyOf(j.now().In(j.location)).Previous()

	employees, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	slog.Info("Cron: Starting monthly bank recompute",
		"competency", competency.String(),
		"employees", len(employees),
	)

	var failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.workers)

	for _, emp := range employees {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := j.recomputer.Recompute(gctx, emp.ID, competency); err != nil {
				failed.Add(1)
				slog.Error("Cron: Failed to recompute monthly bank",
					"employee_id", emp.ID,
					"competency", competency.String(),
					"error", err,
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("Cron: Monthly bank recompute completed",
		"competency", competency.String(),
		"recomputed", len(employees)-int(failed.Load()),
		"failed", failed.Load(),
	)
	return nil
}
