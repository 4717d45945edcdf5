package handlers

import (
	"strconv"

	"campaign-backend/internal/services"
	"campaign-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ContentHandler struct {
	service     services.ContentService
	pageService services.PageService
	logger      *logrus.Logger
}

func NewContentHandler(service services.ContentService, pageService services.PageService, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{
		service:     service,
		pageService: pageService,
		logger:      logger,
	}
}

// ListContent godoc
// @Summary List content records for a page
// @Description Get all content records for the given page partition
// @Tags content
// @Accept json
// @Produce json
// @Param page query string false "Page partition" default(home)
// @Success 200 {object} utils.StandardResponse "Content records"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /content [get]
func (h *ContentHandler) ListContent(c *fiber.Ctx) error {
	ctx := c.Context()

	page := c.Query("page", "home")

	contents, err := h.service.ListByPage(ctx, page)
	if err != nil {
		h.logger.WithError(err).WithField("page", page).Error("Failed to list content")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve content")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Content retrieved successfully", contents)
}

// UpsertContent godoc
// @Summary Upsert a content record
// @Description Insert or overwrite the record addressed by (page, key)
// @Tags content
// @Accept json
// @Produce json
// @Param content body ContentRequest true "Content record"
// @Success 200 {object} utils.StandardResponse "Stored record"
// @Failure 400 {object} utils.StandardResponse "Validation error"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /content [post]
func (h *ContentHandler) UpsertContent(c *fiber.Ctx) error {
	ctx := c.Context()

	var req ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	content, err := h.service.Upsert(ctx, services.UpsertContentInput{
		Page:    req.Page,
		Key:     req.Key,
		Type:    req.Type,
		ValueEn: req.ValueEn,
		ValueNp: req.ValueNp,
	})
	if err != nil {
		h.logger.WithError(err).WithField("key", req.Key).Error("Failed to upsert content")
		return respondServiceError(c, err, "Failed to save content")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Content saved successfully", content)
}

// GetContentByID godoc
// @Summary Get a content record by ID
// @Tags content
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} utils.StandardResponse "Content record"
// @Failure 400 {object} utils.StandardResponse "Invalid content ID"
// @Failure 404 {object} utils.StandardResponse "Content not found"
// @Router /content/{id} [get]
func (h *ContentHandler) GetContentByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	content, err := h.service.GetByID(ctx, uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get content")
		return respondServiceError(c, err, "Failed to retrieve content")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Content retrieved successfully", content)
}

// UpdateContentByID godoc
// @Summary Update a content record by ID
// @Description Partially update the record; moving it onto an occupied (page, key) pair fails
// @Tags content
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param content body ContentUpdateRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Updated record"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Content not found"
// @Router /content/{id} [put]
func (h *ContentHandler) UpdateContentByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	var req ContentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	content, err := h.service.UpdateByID(ctx, uint(id), services.UpdateContentInput{
		Page:    req.Page,
		Key:     req.Key,
		Type:    req.Type,
		ValueEn: req.ValueEn,
		ValueNp: req.ValueNp,
	})
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update content")
		return respondServiceError(c, err, "Failed to update content")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Content updated successfully", content)
}

// DeleteContentByID godoc
// @Summary Delete a content record by ID
// @Tags content
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} utils.StandardResponse "Content deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid content ID"
// @Failure 404 {object} utils.StandardResponse "Content not found"
// @Router /content/{id} [delete]
func (h *ContentHandler) DeleteContentByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	if err := h.service.DeleteByID(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete content")
		return respondServiceError(c, err, "Failed to delete content")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Content deleted successfully", nil)
}

// ResolvePage godoc
// @Summary Resolve page content for rendering
// @Description Returns a key-addressed map of localized, JSON-decoded values for a page, with English fallback and soft-failing JSON parsing
// @Tags content
// @Accept json
// @Produce json
// @Param page path string true "Page"
// @Param locale query string false "Locale (en or np)" default(en)
// @Success 200 {object} utils.StandardResponse "Resolved page content"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /pages/{page} [get]
func (h *ContentHandler) ResolvePage(c *fiber.Ctx) error {
	ctx := c.Context()

	page := c.Params("page")
	locale := c.Query("locale", "en")

	resolved, err := h.pageService.ResolvePage(ctx, page, locale)
	if err != nil {
		h.logger.WithError(err).WithField("page", page).Error("Failed to resolve page content")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to resolve page content")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Page content resolved successfully", resolved)
}

// ListSettings godoc
// @Summary List site settings
// @Description Get all records in the settings partition
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Settings records"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /settings [get]
func (h *ContentHandler) ListSettings(c *fiber.Ctx) error {
	ctx := c.Context()

	settings, err := h.service.ListSettings(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list settings")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve settings")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Settings retrieved successfully", settings)
}

// SaveSettings godoc
// @Summary Save site settings
// @Description Upsert a batch of settings entries, always scoped to the settings partition
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body SettingsRequest true "Settings entries"
// @Success 200 {object} utils.StandardResponse "Settings updated"
// @Failure 400 {object} utils.StandardResponse "Validation error"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/settings [post]
func (h *ContentHandler) SaveSettings(c *fiber.Ctx) error {
	ctx := c.Context()

	var req SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Settings == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Settings must be an array")
	}

	entries := make([]services.UpsertContentInput, 0, len(req.Settings))
	for _, item := range req.Settings {
		entries = append(entries, services.UpsertContentInput{
			Key:     item.Key,
			Type:    item.Type,
			ValueEn: item.ValueEn,
			ValueNp: item.ValueNp,
		})
	}

	if err := h.service.SaveSettings(ctx, entries); err != nil {
		h.logger.WithError(err).Error("Failed to save settings")
		return respondServiceError(c, err, "Failed to save settings")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Settings updated", nil)
}
