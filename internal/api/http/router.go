package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Dashboard      *handlers.DashboardHandler
	SLA            *handlers.SLAHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("/api", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	api.Get("/me", cfg.Auth.Me)
	api.Get("/tickets", cfg.Dashboard.Tickets)
	api.Get("/tickets/:id/sla", cfg.SLA.Breakdown)

	admin := api.Group("/admin", auth.RequireAdmin())
	admin.Get("/users", cfg.Users.List)
	admin.Post("/users", cfg.Users.Create)
	admin.Patch("/users/:id", cfg.Users.Update)
	admin.Delete("/users/:id", cfg.Users.Delete)
}
