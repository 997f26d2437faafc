package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/amsa-mn/website-backend/internal/config"
	"github.com/amsa-mn/website-backend/internal/handlers"
	"github.com/amsa-mn/website-backend/internal/middleware"
	"github.com/amsa-mn/website-backend/internal/roles"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	userHandler *handlers.UserHandler,
	blogHandler *handlers.BlogHandler,
	announcementHandler *handlers.AnnouncementHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	requireAuth := middleware.RequireAuth(cfg)
	requireAdmin := middleware.RequireRole(roles.Admin)

	// Signup/login get a stricter limiter.
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", requireAuth, authHandler.Me)

	// Own-account management
	profile := api.Group("/profile", requireAuth)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Post("/change-password", profileHandler.ChangePassword)
	profile.Delete("/", profileHandler.Delete)

	// Roster and visibility-scoped profile reads
	users := api.Group("/users")
	users.Get("/members", userHandler.Members)
	users.Get("/public-profile/:id", userHandler.PublicProfile)
	users.Get("/profile/:id", requireAuth, userHandler.Profile)

	// Blog reads are open, writes admin-gated.
	blogs := api.Group("/blogs")
	blogs.Get("/", blogHandler.List)
	blogs.Get("/:slug", blogHandler.GetBySlug)
	blogs.Post("/", requireAuth, requireAdmin, blogHandler.Create)
	blogs.Put("/:id", requireAuth, requireAdmin, blogHandler.Update)
	blogs.Delete("/:id", requireAuth, requireAdmin, blogHandler.Delete)

	// Announcements follow the same shape.
	announcements := api.Group("/announcements")
	announcements.Get("/", announcementHandler.List)
	announcements.Get("/:id", announcementHandler.Get)
	announcements.Post("/", requireAuth, requireAdmin, announcementHandler.Create)
	announcements.Put("/:id", requireAuth, requireAdmin, announcementHandler.Update)
	announcements.Delete("/:id", requireAuth, requireAdmin, announcementHandler.Delete)
}
