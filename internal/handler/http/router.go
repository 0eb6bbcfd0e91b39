package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/middleware"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Profile    ProfileHandler
	Leave      LeaveHandler
	Task       TaskHandler
	Attendance AttendanceHandler
	Master     MasterHandler
	Dashboard  DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhub"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Post("/hr", h.Auth.LoginHR)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})

			// Registration is an HR action, not an open signup.
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Use(middleware.RequireHR)
				r.Post("/register", h.Auth.Register)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/profile", h.Profile.GetProfile)

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Submit)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Put("/{id}/approve", h.Leave.Approve)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Put("/{id}", h.Task.Update)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", h.Task.Create)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/today", h.Attendance.Today)
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
			})

			// HR only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Get("/hr/dashboard", h.Dashboard.GetDashboard)
				r.Get("/hr/users/{id}", h.Profile.GetProfileByID)

				r.Route("/master", func(r chi.Router) {
					r.Route("/departments", func(r chi.Router) {
						r.Get("/", h.Master.ListDepartments)
						r.Post("/", h.Master.CreateDepartment)
						r.Delete("/{id}", h.Master.DeleteDepartment)
					})
					r.Route("/positions", func(r chi.Router) {
						r.Get("/", h.Master.ListPositions)
						r.Post("/", h.Master.CreatePosition)
						r.Delete("/{id}", h.Master.DeletePosition)
					})
				})
			})
		})
	})

	return r
}
