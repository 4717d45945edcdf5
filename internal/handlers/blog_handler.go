package handlers

import (
	"strconv"

	"campaign-backend/internal/services"
	"campaign-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	service services.BlogService
	logger  *logrus.Logger
}

func NewBlogHandler(service services.BlogService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{
		service: service,
		logger:  logger,
	}
}

// ListPublishedBlogs godoc
// @Summary List published blog posts
// @Description Get published posts only, newest first, with pagination
// @Tags blogs
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page, 0 for all" default(0)
// @Success 200 {object} utils.StandardResponse "Published posts"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /blogs [get]
func (h *BlogHandler) ListPublishedBlogs(c *fiber.Ctx) error {
	return h.listBlogs(c, true)
}

// ListAllBlogs godoc
// @Summary List all blog posts (admin)
// @Description Get every post including drafts, newest first, with pagination
// @Tags blogs
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page, 0 for all" default(0)
// @Success 200 {object} utils.StandardResponse "All posts"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/blogs [get]
func (h *BlogHandler) ListAllBlogs(c *fiber.Ctx) error {
	return h.listBlogs(c, false)
}

func (h *BlogHandler) listBlogs(c *fiber.Ctx, publishedOnly bool) error {
	ctx := c.Context()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	blogs, total, err := h.service.List(ctx, publishedOnly, page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list blogs")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve blogs")
	}

	if limit > 0 {
		meta := utils.CreatePaginationMeta(page, limit, total)
		return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Blogs retrieved successfully", blogs, meta)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Blogs retrieved successfully", blogs)
}

// GetBlogByID godoc
// @Summary Get a blog post by ID
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} utils.StandardResponse "Blog post"
// @Failure 400 {object} utils.StandardResponse "Invalid blog ID"
// @Failure 404 {object} utils.StandardResponse "Blog not found"
// @Router /blogs/{id} [get]
func (h *BlogHandler) GetBlogByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid blog ID")
	}

	blog, err := h.service.GetByID(ctx, uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get blog")
		return respondServiceError(c, err, "Failed to retrieve blog")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Blog retrieved successfully", blog)
}

// GetBlogBySlug godoc
// @Summary Get a blog post by slug
// @Tags blogs
// @Accept json
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} utils.StandardResponse "Blog post"
// @Failure 404 {object} utils.StandardResponse "Blog not found"
// @Router /blogs/slug/{slug} [get]
func (h *BlogHandler) GetBlogBySlug(c *fiber.Ctx) error {
	ctx := c.Context()

	slug := c.Params("slug")

	blog, err := h.service.GetBySlug(ctx, slug)
	if err != nil {
		h.logger.WithError(err).WithField("slug", slug).Error("Failed to get blog by slug")
		return respondServiceError(c, err, "Failed to retrieve blog")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Blog retrieved successfully", blog)
}

// CreateBlog godoc
// @Summary Create a blog post
// @Description Create a post; slug is derived from the English title when omitted
// @Tags blogs
// @Accept json
// @Produce json
// @Param blog body BlogRequest true "Blog request object"
// @Success 201 {object} utils.StandardResponse "Blog created"
// @Failure 400 {object} utils.StandardResponse "Validation error or duplicate slug"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/blogs [post]
func (h *BlogHandler) CreateBlog(c *fiber.Ctx) error {
	ctx := c.Context()

	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	blog, err := h.service.Create(ctx, services.CreateBlogInput{
		TitleEn:       req.TitleEn,
		TitleNp:       req.TitleNp,
		Slug:          req.Slug,
		ContentEn:     req.ContentEn,
		ContentNp:     req.ContentNp,
		ExcerptEn:     req.ExcerptEn,
		ExcerptNp:     req.ExcerptNp,
		FeaturedImage: req.FeaturedImage,
		Published:     req.Published,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create blog")
		return respondServiceError(c, err, "Failed to create blog")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Blog created successfully", blog)
}

// UpdateBlog godoc
// @Summary Update a blog post
// @Description Partially update a post; the slug follows title changes unless pinned
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "Blog ID"
// @Param blog body BlogUpdateRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Blog updated"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Blog not found"
// @Router /admin/blogs/{id} [patch]
func (h *BlogHandler) UpdateBlog(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid blog ID")
	}

	var req BlogUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	blog, err := h.service.Update(ctx, uint(id), services.UpdateBlogInput{
		TitleEn:       req.TitleEn,
		TitleNp:       req.TitleNp,
		Slug:          req.Slug,
		ContentEn:     req.ContentEn,
		ContentNp:     req.ContentNp,
		ExcerptEn:     req.ExcerptEn,
		ExcerptNp:     req.ExcerptNp,
		FeaturedImage: req.FeaturedImage,
		Published:     req.Published,
	})
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update blog")
		return respondServiceError(c, err, "Failed to update blog")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Blog updated successfully", blog)
}

// DeleteBlog godoc
// @Summary Delete a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} utils.StandardResponse "Blog deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid blog ID"
// @Failure 404 {object} utils.StandardResponse "Blog not found"
// @Router /admin/blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid blog ID")
	}

	if err := h.service.Delete(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete blog")
		return respondServiceError(c, err, "Failed to delete blog")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Blog deleted successfully", nil)
}

// IncrementBlogViews godoc
// @Summary Count one blog view
// @Description Atomically increment the view counter; called once per public page view
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} utils.StandardResponse "View counted"
// @Failure 400 {object} utils.StandardResponse "Invalid blog ID"
// @Failure 404 {object} utils.StandardResponse "Blog not found"
// @Router /blogs/{id}/view [post]
func (h *BlogHandler) IncrementBlogViews(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid blog ID")
	}

	if err := h.service.IncrementViews(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to increment blog views")
		return respondServiceError(c, err, "Failed to count view")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "View counted", nil)
}

// GetBlogStats godoc
// @Summary Get blog dashboard statistics
// @Description Total posts, published posts, and summed views
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Blog statistics"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/blogs/stats [get]
func (h *BlogHandler) GetBlogStats(c *fiber.Ctx) error {
	ctx := c.Context()

	stats, err := h.service.Stats(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get blog stats")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve statistics")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Statistics retrieved successfully", stats)
}
