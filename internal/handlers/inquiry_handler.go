package handlers

import (
	"strconv"

	"campaign-backend/internal/services"
	"campaign-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type InquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type InquiryHandler struct {
	service services.InquiryService
	logger  *logrus.Logger
}

func NewInquiryHandler(service services.InquiryService, logger *logrus.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		logger:  logger,
	}
}

// CreateInquiry godoc
// @Summary Submit a contact inquiry
// @Description Public contact form; name, email and message are required
// @Tags contact
// @Accept json
// @Produce json
// @Param inquiry body InquiryRequest true "Inquiry"
// @Success 201 {object} utils.StandardResponse "Inquiry created"
// @Failure 400 {object} utils.StandardResponse "Missing fields"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /contact [post]
func (h *InquiryHandler) CreateInquiry(c *fiber.Ctx) error {
	ctx := c.Context()

	var req InquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	inquiry, err := h.service.Create(ctx, services.CreateInquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create inquiry")
		return respondServiceError(c, err, "Failed to send message")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Message sent successfully", inquiry)
}

// ListInquiries godoc
// @Summary List contact inquiries (admin)
// @Description Get inquiries newest first, with pagination
// @Tags contact
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page, 0 for all" default(0)
// @Success 200 {object} utils.StandardResponse "Inquiries"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/contact [get]
func (h *InquiryHandler) ListInquiries(c *fiber.Ctx) error {
	ctx := c.Context()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	inquiries, total, err := h.service.List(ctx, page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list inquiries")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve messages")
	}

	if limit > 0 {
		meta := utils.CreatePaginationMeta(page, limit, total)
		return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Inquiries retrieved successfully", inquiries, meta)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Inquiries retrieved successfully", inquiries)
}

// ToggleInquiryRead godoc
// @Summary Toggle the read flag on an inquiry
// @Tags contact
// @Accept json
// @Produce json
// @Param id path int true "Inquiry ID"
// @Success 200 {object} utils.StandardResponse "Updated inquiry"
// @Failure 400 {object} utils.StandardResponse "Invalid inquiry ID"
// @Failure 404 {object} utils.StandardResponse "Inquiry not found"
// @Router /admin/contact/{id} [patch]
func (h *InquiryHandler) ToggleInquiryRead(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid inquiry ID")
	}

	inquiry, err := h.service.ToggleRead(ctx, uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to toggle inquiry read flag")
		return respondServiceError(c, err, "Failed to update message")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Inquiry updated successfully", fiber.Map{
		"isRead": inquiry.IsRead,
	})
}

// DeleteInquiry godoc
// @Summary Delete an inquiry
// @Tags contact
// @Accept json
// @Produce json
// @Param id path int true "Inquiry ID"
// @Success 200 {object} utils.StandardResponse "Inquiry deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid inquiry ID"
// @Failure 404 {object} utils.StandardResponse "Inquiry not found"
// @Router /admin/contact/{id} [delete]
func (h *InquiryHandler) DeleteInquiry(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid inquiry ID")
	}

	if err := h.service.Delete(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete inquiry")
		return respondServiceError(c, err, "Failed to delete message")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Inquiry deleted successfully", nil)
}
