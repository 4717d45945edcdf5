package handlers

import (
	"campaign-backend/internal/services"
	"campaign-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	minioService *services.MinIOService
	logger       *logrus.Logger
}

func NewUploadHandler(minioService *services.MinIOService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		minioService: minioService,
		logger:       logger,
	}
}

// UploadFile godoc
// @Summary Upload a file (admin)
// @Description Stores a single multipart "image" file and returns its public URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "File to upload"
// @Success 201 {object} utils.StandardResponse "Stored object"
// @Failure 400 {object} utils.StandardResponse "No file uploaded"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/upload [post]
func (h *UploadHandler) UploadFile(c *fiber.Ctx) error {
	ctx := c.Context()

	header, err := c.FormFile("image")
	if err != nil {
		header, err = c.FormFile("file")
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No file uploaded")
	}

	src, err := header.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file")
	}
	defer src.Close()

	objectName := h.minioService.BuildObjectName(header.Filename)
	url, err := h.minioService.UploadFile(ctx, objectName, src, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.WithError(err).WithField("filename", header.Filename).Error("Failed to upload file")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "File uploaded successfully", fiber.Map{
		"filename": objectName,
		"url":      url,
	})
}

// ListUploadedImages godoc
// @Summary List stored images (admin)
// @Description Lists image objects directly from the storage bucket
// @Tags upload
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Stored images"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/upload/images [get]
func (h *UploadHandler) ListUploadedImages(c *fiber.Ctx) error {
	ctx := c.Context()

	images, err := h.minioService.ListImages(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list stored images")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list images")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Images retrieved successfully", images)
}

// DeleteUploadedFile godoc
// @Summary Delete a stored file (admin)
// @Tags upload
// @Accept json
// @Produce json
// @Param filename path string true "Stored object name"
// @Success 200 {object} utils.StandardResponse "File deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid filename"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/upload/{filename} [delete]
func (h *UploadHandler) DeleteUploadedFile(c *fiber.Ctx) error {
	filename, err := urlDecodeParam(c, "filename")
	if err != nil || filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filename")
	}

	if err := h.minioService.DeleteFile(filename); err != nil {
		h.logger.WithError(err).WithField("filename", filename).Error("Failed to delete stored file")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete file")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "File deleted successfully", nil)
}
