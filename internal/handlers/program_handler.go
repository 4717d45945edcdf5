package handlers

import (
	"strconv"

	"campaign-backend/internal/services"
	"campaign-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProgramHandler struct {
	service services.ProgramService
	logger  *logrus.Logger
}

func NewProgramHandler(service services.ProgramService, logger *logrus.Logger) *ProgramHandler {
	return &ProgramHandler{
		service: service,
		logger:  logger,
	}
}

// ListPrograms godoc
// @Summary List upcoming programs
// @Description Public listing of programs dated today or later, soonest first
// @Tags programs
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of programs, 0 for all" default(0)
// @Success 200 {object} utils.StandardResponse "Programs"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /programs [get]
func (h *ProgramHandler) ListPrograms(c *fiber.Ctx) error {
	ctx := c.Context()

	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	programs, err := h.service.ListPublic(ctx, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list public programs")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve programs")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Programs retrieved successfully", programs)
}

// ListAllPrograms godoc
// @Summary List every program (admin)
// @Description All programs regardless of date or status, newest date first
// @Tags programs
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Programs"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/programs [get]
func (h *ProgramHandler) ListAllPrograms(c *fiber.Ctx) error {
	ctx := c.Context()

	programs, err := h.service.ListAdmin(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list programs")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve programs")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Programs retrieved successfully", programs)
}

// CreateProgram godoc
// @Summary Create a program
// @Tags programs
// @Accept json
// @Produce json
// @Param program body ProgramRequest true "Program"
// @Success 201 {object} utils.StandardResponse "Program created"
// @Failure 400 {object} utils.StandardResponse "Validation error"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/programs [post]
func (h *ProgramHandler) CreateProgram(c *fiber.Ctx) error {
	ctx := c.Context()

	var req ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input, err := req.toInput()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}

	program, err := h.service.Create(ctx, input)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create program")
		return respondServiceError(c, err, "Failed to create program")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Program created successfully", program)
}

// UpdateProgram godoc
// @Summary Update a program
// @Description Partial update; only the provided fields change
// @Tags programs
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Param program body ProgramUpdateRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Updated program"
// @Failure 400 {object} utils.StandardResponse "Validation error"
// @Failure 404 {object} utils.StandardResponse "Program not found"
// @Router /admin/programs/{id} [patch]
func (h *ProgramHandler) UpdateProgram(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid program ID")
	}

	var req ProgramUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input, err := req.toInput()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}

	program, err := h.service.Update(ctx, uint(id), input)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update program")
		return respondServiceError(c, err, "Failed to update program")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Program updated successfully", program)
}

// DeleteProgram godoc
// @Summary Delete a program
// @Tags programs
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} utils.StandardResponse "Program deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid program ID"
// @Failure 404 {object} utils.StandardResponse "Program not found"
// @Router /admin/programs/{id} [delete]
func (h *ProgramHandler) DeleteProgram(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid program ID")
	}

	if err := h.service.Delete(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete program")
		return respondServiceError(c, err, "Failed to delete program")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Program deleted successfully", nil)
}
