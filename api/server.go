/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the dashboard frontends

ROUTE GROUPS:
  /api/calendar/*    Month classification, grids, working-day counts
  /api/holidays      Recurring holiday table
  /api/overrides/*   Optional-holiday taken/not-taken snapshots
  /api/employees/*   Employees and their attendance records

SECURITY NOTE:
  No authentication middleware. Authentication is owned by the portal that
  fronts this engine.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Calendar routes
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/working-days", h.GetWorkingDays)
			r.Get("/{year}/{month}", h.GetMonth)
			r.Get("/{year}/{month}/grid", h.GetMonthGrid)
		})

		r.Get("/holidays", h.ListHolidays)

		// Override routes
		r.Route("/overrides", func(r chi.Router) {
			r.Get("/{year}/{month}", h.GetOverrides)
			r.Put("/{dateKey}", h.SetOverride)
		})

		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Post("/{id}/attendance", h.SubmitAttendance)
			r.Get("/{id}/attendance", h.ListAttendance)
			r.Get("/{id}/attendance/summary", h.GetAttendanceSummary)
		})
	})

	return r
}
