package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/timebank-backend-go/internal/config"
	"github.com/cmlabs-hris/timebank-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Punch    PunchHandler
	Schedule ScheduleHandler
	Timebank TimebankHandler
	Vacation VacationHandler
}

func NewRouter(appConfig config.AppConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(appConfig.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timebank-cmlabs"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appConfig.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/punches", func(r chi.Router) {
				r.Post("/clock", h.Punch.Clock)
				r.Get("/status", h.Punch.Status)
				r.Get("/", h.Punch.List)

				r.With(middleware.RequireManager).Post("/manual", h.Punch.CreateManual)
			})

			r.Route("/schedules/{employeeID}", func(r chi.Router) {
				r.Get("/", h.Schedule.Get)
				r.With(middleware.RequireManager).Put("/", h.Schedule.Upsert)
			})

			r.Route("/timebank", func(r chi.Router) {
				r.Get("/extract", h.Timebank.Extract)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/recompute", h.Timebank.Recompute)
					r.Post("/statements", h.Timebank.SendStatement)
				})
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Get("/balance", h.Vacation.Balance)
				r.Post("/", h.Vacation.Create)
				r.Get("/", h.Vacation.List)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", h.Vacation.Approve)
					r.Post("/{id}/reject", h.Vacation.Reject)
				})
			})
		})
	})
	return r
}
