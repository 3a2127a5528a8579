package routes

import (
	"homeservices-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything Setup mounts onto the app.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Language *handlers.LanguageHandler
	Service  *handlers.ServiceHandler
	Blog     *handlers.BlogHandler
	Review   *handlers.ReviewHandler
	FAQ      *handlers.FAQHandler
	Stat     *handlers.StatHandler
	Contact  *handlers.ContactHandler
	About    *handlers.AboutHandler
	Upload   *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers, requireAuth, optionalAuth fiber.Handler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Auth routes - admin session management
	authGroup := v1.Group("/auth")
	{
		authGroup.Post("/login", h.Auth.Login)
		authGroup.Post("/logout", h.Auth.Logout)
		authGroup.Get("/me", requireAuth, h.Auth.Me)
	}

	v1.Get("/languages", h.Language.List)

	// Service routes - public reads, admin mutations
	services := v1.Group("/services")
	{
		services.Get("/", optionalAuth, h.Service.List)
		services.Get("/:slug", h.Service.Get)
		services.Post("/", requireAuth, h.Service.Create)
		services.Post("/reorder", requireAuth, h.Service.Reorder)
		services.Put("/:slug", requireAuth, h.Service.Update)
		services.Delete("/:slug", requireAuth, h.Service.Delete)
	}

	// Blog routes - comments are nested under their post
	blogs := v1.Group("/blogs")
	{
		blogs.Get("/", optionalAuth, h.Blog.List)
		blogs.Get("/:slug", h.Blog.Get)
		blogs.Post("/", requireAuth, h.Blog.Create)
		blogs.Put("/:slug", requireAuth, h.Blog.Update)
		blogs.Delete("/:slug", requireAuth, h.Blog.Delete)

		blogs.Get("/:slug/comments", optionalAuth, h.Blog.ListComments)
		blogs.Post("/:slug/comments", h.Blog.CreateComment)
	}

	comments := v1.Group("/comments")
	{
		comments.Patch("/:id/approve", requireAuth, h.Blog.ApproveComment)
		comments.Delete("/:commentId", requireAuth, h.Blog.DeleteComment)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.Get("/", optionalAuth, h.Review.List)
		reviews.Post("/", requireAuth, h.Review.Create)
		reviews.Post("/reorder", requireAuth, h.Review.Reorder)
		reviews.Put("/:reviewId", requireAuth, h.Review.Update)
		reviews.Delete("/:reviewId", requireAuth, h.Review.Delete)
	}

	faqs := v1.Group("/faqs")
	{
		faqs.Get("/", optionalAuth, h.FAQ.List)
		faqs.Post("/", requireAuth, h.FAQ.Create)
		faqs.Post("/reorder", requireAuth, h.FAQ.Reorder)
		faqs.Put("/:faqId", requireAuth, h.FAQ.Update)
		faqs.Delete("/:faqId", requireAuth, h.FAQ.Delete)
	}

	stats := v1.Group("/stats")
	{
		stats.Get("/", optionalAuth, h.Stat.List)
		stats.Post("/", requireAuth, h.Stat.Create)
		stats.Post("/reorder", requireAuth, h.Stat.Reorder)
		stats.Put("/:statId", requireAuth, h.Stat.Update)
		stats.Delete("/:statId", requireAuth, h.Stat.Delete)
	}

	// Contact routes - submission is public, the inbox is admin-only
	contact := v1.Group("/contact")
	{
		contact.Post("/", h.Contact.Create)
		contact.Get("/", requireAuth, h.Contact.List)
		contact.Patch("/:contactId/read", requireAuth, h.Contact.MarkRead)
		contact.Delete("/:contactId", requireAuth, h.Contact.Delete)
	}

	about := v1.Group("/about")
	{
		about.Get("/", optionalAuth, h.About.Get)
		about.Put("/", requireAuth, h.About.Upsert)
	}

	upload := v1.Group("/upload", requireAuth)
	{
		upload.Post("/", h.Upload.Upload)
		upload.Get("/presign", h.Upload.Presign)
	}
}
