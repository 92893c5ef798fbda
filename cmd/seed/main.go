// Command seed fills a PostgreSQL database with fake employees, schedules and
// one month of punches, then prints an access token per employee.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit"
	"github.com/cmlabs-hris/timebank-backend-go/internal/config"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timebank-backend-go/internal/repository/postgresql"
	"github.com/spf13/cobra"
)

type SeedOptions struct {
	Employees  int
	Managers   int
	Competency string
	Seed       int64
}

var sopts SeedOptions

var rootCmd = &cobra.Command{
	Use:   "seed [flags]",
	Short: "Populate the time bank database with demo employees and punches.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context(), sopts)
	},
}

func init() {
	rootCmd.Flags().IntVarP(&sopts.Employees, "employees", "e", 10, "Number of employees to create")
	rootCmd.Flags().IntVarP(&sopts.Managers, "managers", "m", 1, "Number of managers to create")
	rootCmd.Flags().StringVarP(&sopts.Competency, "competency", "c", "", "Month to fill with punches (YYYY-MM), defaults to the previous month")
	rootCmd.Flags().Int64VarP(&sopts.Seed, "seed", "s", 0, "Random seed, 0 uses the current time")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error executing command: %s", err)
	}
}

func Run(ctx context.Context, opts SeedOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	now := time.Now()
	if opts.Seed == 0 {
		opts.Seed = now.UnixNano()
	}
	gofakeit.Seed(opts.Seed)

	competency := timebank.CompetencyOf(now.In(cfg.Timebank.Location)).Previous()
	if opts.Competency != "" {
		if competency, err = timebank.ParseCompetency(opts.Competency); err != nil {
			return err
		}
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := postgresql.Migrate(ctx, db); err != nil {
		return err
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewWeeklyScheduleRepository(db)
	punchRepo := postgresql.NewPunchRecordRepository(db)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	gen := generator{location: cfg.Timebank.Location, now: now}

	roles := make([]employee.Role, 0, opts.Managers+opts.Employees)
	for range opts.Managers {
		roles = append(roles, employee.RoleManager)
	}
	for range opts.Employees {
		roles = append(roles, employee.RoleEmployee)
	}

	for _, role := range roles {
		emp, err := employeeRepo.Create(ctx, gen.employee(role))
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		sched, err := scheduleRepo.Upsert(ctx, gen.schedule(emp.ID))
		if err != nil {
			return fmt.Errorf("failed to create schedule: %w", err)
		}

		records := gen.month(emp.ID, sched, competency)
		for _, record := range records {
			if _, err := punchRepo.Create(ctx, record); err != nil {
				return fmt.Errorf("failed to create punch record for %s: %w", record.Date.Format("2006-01-02"), err)
			}
		}

		token, _, err := JWTService.GenerateAccessToken(emp.ID, emp.Role)
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}

		fmt.Fprintf(os.Stdout, "%-8s %-36s %-28s days=%-2d token=%s\n", emp.Role, emp.ID, emp.FullName, len(records), token)
	}

	fmt.Fprintf(os.Stdout, "seeded %d employees for %s (seed %d)\n", len(roles), competency, opts.Seed)
	return nil
}
