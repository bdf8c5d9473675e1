package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health           *handlers.HealthHandler
	Users            *handlers.UsersHandler
	Jobs             *handlers.JobsHandler
	AuthMiddleware   *auth.AuthMiddleware
	EnforceOwnership bool
}

// RegisterRoutes wires HTTP routes. Job reads are public in both deployment
// modes; mutations go through the auth gate only when ownership is enforced.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/signup", cfg.Users.Signup)
	users.Post("/login", cfg.Users.Login)
	users.Get("/me", cfg.AuthMiddleware.Handle, cfg.Users.Me)

	jobs := api.Group("/jobs")
	jobs.Get("/", cfg.Jobs.ListJobs)
	jobs.Get("/:id", cfg.Jobs.GetJob)

	if cfg.EnforceOwnership {
		jobs.Post("/", cfg.AuthMiddleware.Handle, cfg.Jobs.CreateJob)
		jobs.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Jobs.UpdateJob)
		jobs.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Jobs.DeleteJob)
	} else {
		jobs.Post("/", cfg.Jobs.CreateJob)
		jobs.Put("/:id", cfg.Jobs.UpdateJob)
		jobs.Delete("/:id", cfg.Jobs.DeleteJob)
	}
}
