package http

import (
	"log/slog"
	"os"

	"github.com/ezbpo/staff-activity-backend-go/internal/handler/http/middleware"
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	dashboardHandler DashboardHandler,
	masterHandler MasterDataHandler,
	reportHandler ReportHandler,
	eventsHandler EventsHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staff-activity-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// SSE stream authenticates with its own short-lived token
		r.Get("/events", eventsHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)
			r.Get("/events/token", eventsHandler.GetSSEToken)

			r.Get("/departments", masterHandler.ListDepartments)
			r.Get("/projects", masterHandler.ListProjects)
			r.Get("/statuses", masterHandler.ListStatusDefinitions)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/kpi", dashboardHandler.Kpi)
				r.Get("/staff", dashboardHandler.ListStaff)
				r.Post("/refresh", dashboardHandler.Refresh)
			})

			r.Get("/staff/{id}/entries", dashboardHandler.StaffEntries)

			r.Route("/reports", func(r chi.Router) {
				r.Post("/activity", reportHandler.Generate)
				r.Post("/activity/export", reportHandler.Export)
			})
		})
	})
	return r
}
