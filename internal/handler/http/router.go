package http

import (
	"log/slog"
	"os"

	"github.com/attendease/attendease-backend-go/internal/handler/http/middleware"
	"github.com/attendease/attendease-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env            string
	AllowedOrigins []string
}

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Geofence   GeofenceHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Settings   SettingsHandler
	Dashboard  DashboardHandler
	SSE        SSEHandler
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendease"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Route("/callback", func(r chi.Router) {
					r.Get("/google", h.Auth.OAuthCallbackGoogle)
				})
			})
		})

		// SSE stream authenticates by query token, not header
		r.Get("/events/stream", h.SSE.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/events/token", h.SSE.GetSSEToken)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/my-day", h.Attendance.GetMyDay)
				r.Get("/my-events", h.Attendance.GetMyEvents)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/summaries", h.Attendance.ListSummaries)
					r.Post("/summaries/{employeeID}/recompute", h.Attendance.RecomputeDay)
				})
			})

			r.Route("/geofences", func(r chi.Router) {
				r.Post("/preview", h.Geofence.Preview)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Geofence.List)
					r.Post("/", h.Geofence.Create)
					r.Get("/{geofenceID}", h.Geofence.Get)
					r.Put("/{geofenceID}", h.Geofence.Update)
					r.Delete("/{geofenceID}", h.Geofence.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{employeeID}", h.Employee.Get)
				r.Put("/{employeeID}", h.Employee.Update)
				r.Delete("/{employeeID}", h.Employee.Delete)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/my", h.Leave.GetMyLeaves)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.List)
					r.Post("/{leaveID}/approve", h.Leave.Approve)
					r.Post("/{leaveID}/reject", h.Leave.Reject)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/work-policy", h.Settings.GetWorkPolicy)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/work-policy", h.Settings.UpdateWorkPolicy)
					r.Get("/email", h.Settings.GetEmailSettings)
					r.Put("/email", h.Settings.UpdateEmailSettings)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/today", h.Dashboard.GetTodayOverview)
			})
		})
	})

	return r
}
