package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/http/handlers"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Bookings       *handlers.BookingsHandler
	Artists        *handlers.ArtistsHandler
	Designs        *handlers.DesignsHandler
	AuthMiddleware *auth.AuthMiddleware
	RoleStore      auth.RoleStore
}

// RegisterRoutes wires HTTP routes. Privileged routes pass through RequireRole,
// which re-reads the caller's role from the store on every request.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Post("/renew", cfg.Auth.Renew)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	designs := app.Group("/designs", cfg.AuthMiddleware.Handle)
	designs.Post("/", cfg.Designs.Create)
	designs.Get("/", cfg.Designs.ListMine)

	bookings := app.Group("/bookings", cfg.AuthMiddleware.Handle)
	bookings.Post("/", cfg.Bookings.Create)
	bookings.Get("/mine", cfg.Bookings.ListMine)
	bookings.Get("/",
		auth.RequireRole(cfg.RoleStore, domain.RoleAdmin, domain.RoleArtist),
		cfg.Bookings.List)
	bookings.Patch("/:id/status",
		auth.RequireRole(cfg.RoleStore, domain.RoleAdmin, domain.RoleArtist),
		cfg.Bookings.SetStatus)
	bookings.Post("/:id/cancel", cfg.Bookings.Cancel)

	artists := app.Group("/artists")
	artists.Get("/", cfg.Artists.List)
	artists.Post("/", cfg.AuthMiddleware.Handle, cfg.Artists.CreateProfile)
	artists.Patch("/availability",
		cfg.AuthMiddleware.Handle,
		auth.RequireRole(cfg.RoleStore, domain.RoleArtist),
		cfg.Artists.SetAvailability)
	artists.Get("/:id", cfg.Artists.Get)
	artists.Post("/:id/review", cfg.AuthMiddleware.Handle, cfg.Artists.SubmitReview)
	artists.Delete("/:id/review", cfg.AuthMiddleware.Handle, cfg.Artists.DeleteReview)
}
