package routes

import (
	"campaign-backend/internal/handlers"
	"campaign-backend/internal/middleware"
	"campaign-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Content *handlers.ContentHandler
	Blog    *handlers.BlogHandler
	Inquiry *handlers.InquiryHandler
	Program *handlers.ProgramHandler
	Gallery *handlers.GalleryHandler
	Upload  *handlers.UploadHandler
	Auth    *handlers.AuthHandler
}

func Setup(app *fiber.App, h Handlers, authService services.AuthService) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.Post("/login", h.Auth.Login)
		auth.Get("/me", middleware.Protected(authService), h.Auth.Me)
	}

	// Public site routes - content, pages and listings
	v1.Get("/content", h.Content.ListContent)
	v1.Get("/pages/:page", h.Content.ResolvePage)
	v1.Get("/settings", h.Content.ListSettings)

	blogs := v1.Group("/blogs")
	{
		blogs.Get("/", h.Blog.ListPublishedBlogs)
		blogs.Get("/slug/:slug", h.Blog.GetBlogBySlug)
		blogs.Get("/:id", h.Blog.GetBlogByID)
		blogs.Post("/:id/view", h.Blog.IncrementBlogViews)
	}

	v1.Get("/programs", h.Program.ListPrograms)
	v1.Post("/contact", h.Inquiry.CreateInquiry)

	gallery := v1.Group("/gallery")
	{
		gallery.Get("/", h.Gallery.ListGalleryImages)
		gallery.Get("/videos", h.Gallery.ListGalleryVideos)
	}

	// Admin routes - everything below requires a valid token
	admin := v1.Group("/admin", middleware.Protected(authService))

	adminContent := admin.Group("/content")
	{
		adminContent.Post("/", h.Content.UpsertContent)
		adminContent.Get("/:id", h.Content.GetContentByID)
		adminContent.Patch("/:id", h.Content.UpdateContentByID)
		adminContent.Delete("/:id", h.Content.DeleteContentByID)
	}
	admin.Post("/settings", h.Content.SaveSettings)

	adminBlogs := admin.Group("/blogs")
	{
		adminBlogs.Get("/", h.Blog.ListAllBlogs)
		adminBlogs.Get("/stats", h.Blog.GetBlogStats)
		adminBlogs.Post("/", h.Blog.CreateBlog)
		adminBlogs.Patch("/:id", h.Blog.UpdateBlog)
		adminBlogs.Delete("/:id", h.Blog.DeleteBlog)
	}

	adminPrograms := admin.Group("/programs")
	{
		adminPrograms.Get("/", h.Program.ListAllPrograms)
		adminPrograms.Post("/", h.Program.CreateProgram)
		adminPrograms.Patch("/:id", h.Program.UpdateProgram)
		adminPrograms.Delete("/:id", h.Program.DeleteProgram)
	}

	adminContact := admin.Group("/contact")
	{
		adminContact.Get("/", h.Inquiry.ListInquiries)
		adminContact.Patch("/:id", h.Inquiry.ToggleInquiryRead)
		adminContact.Delete("/:id", h.Inquiry.DeleteInquiry)
	}

	adminGallery := admin.Group("/gallery")
	{
		adminGallery.Post("/", h.Gallery.UploadGalleryImages)
		adminGallery.Post("/videos", h.Gallery.CreateGalleryVideo)
		adminGallery.Delete("/videos/:id", h.Gallery.DeleteGalleryVideo)
		adminGallery.Delete("/:filename", h.Gallery.DeleteGalleryImage)
	}

	adminUpload := admin.Group("/upload")
	{
		adminUpload.Post("/", h.Upload.UploadFile)
		adminUpload.Get("/images", h.Upload.ListUploadedImages)
		adminUpload.Delete("/:filename", h.Upload.DeleteUploadedFile)
	}
}
