package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/config"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/vacation"
	appHTTP "github.com/cmlabs-hris/timebank-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/email"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timebank-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/timebank-backend-go/internal/repository/postgresql"
	reportService "github.com/cmlabs-hris/timebank-backend-go/internal/service/report"
	scheduleService "github.com/cmlabs-hris/timebank-backend-go/internal/service/schedule"
	timebankService "github.com/cmlabs-hris/timebank-backend-go/internal/service/timebank"
	timeclockService "github.com/cmlabs-hris/timebank-backend-go/internal/service/timeclock"
	vacationService "github.com/cmlabs-hris/timebank-backend-go/internal/service/vacation"
)

type repositories struct {
	employees employee.EmployeeRepository
	schedules schedule.WeeklyScheduleRepository
	punches   timeclock.PunchRecordRepository
	bank      timebank.MonthlyBankRepository
	vacations vacation.VacationRequestRepository
}

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	loc := cfg.Timebank.Location
	now := time.Now

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("failed to initialize email service: %w", err)
	}

	punchSvc := timeclockService.NewPunchClockService(repos.punches, repos.employees, loc, now)
	scheduleSvc := scheduleService.NewScheduleService(repos.schedules, repos.employees, now)
	vacationSvc := vacationService.NewVacationService(repos.vacations, repos.employees, loc, now)
	timebankSvc := timebankService.NewTimebankService(repos.employees, repos.schedules, repos.punches, repos.bank, vacationSvc, now)
	reportSvc := reportService.NewReportService(repos.employees, timebankSvc, emailService)

	router := appHTTP.NewRouter(cfg.App, JWTService, appHTTP.Handlers{
		Punch:    appHTTP.NewPunchHandler(punchSvc),
		Schedule: appHTTP.NewScheduleHandler(scheduleSvc),
		Timebank: appHTTP.NewTimebankHandler(timebankSvc, reportSvc),
		Vacation: appHTTP.NewVacationHandler(vacationSvc),
	})

	scheduler := cron.NewScheduler(ctx)
	cron.NewTimebankJobs(repos.employees, timebankSvc, loc, cfg.Timebank.RecomputeWorker, now).
		RegisterJobs(scheduler, cfg.Timebank.RecomputeEvery)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "driver", cfg.Database.Driver, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openRepositories(ctx context.Context, cfg *config.Config) (repositories, func(), error) {
	switch cfg.Database.Driver {
	case "memory":
		slog.Warn("Using in-memory store, data is lost on restart")
		return repositories{
			employees: memory.NewEmployeeRepository(),
			schedules: memory.NewWeeklyScheduleRepository(),
			punches:   memory.NewPunchRecordRepository(),
			bank:      memory.NewMonthlyBankRepository(),
			vacations: memory.NewVacationRequestRepository(),
		}, func() {}, nil
	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return repositories{}, nil, fmt.Errorf("error connecting to database: %w", err)
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return repositories{}, nil, err
		}
		return repositories{
			employees: postgresql.NewEmployeeRepository(db),
			schedules: postgresql.NewWeeklyScheduleRepository(db),
			punches:   postgresql.NewPunchRecordRepository(db),
			bank:      postgresql.NewMonthlyBankRepository(db),
			vacations: postgresql.NewVacationRequestRepository(db),
		}, db.Close, nil
	}
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
