package handlers

import (
	"strconv"

	"campaign-backend/internal/services"
	"campaign-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GalleryVideoRequest struct {
	TitleEn  string `json:"titleEn"`
	TitleNp  string `json:"titleNp"`
	VideoURL string `json:"videoUrl"`
}

type GalleryHandler struct {
	service services.GalleryService
	logger  *logrus.Logger
}

func NewGalleryHandler(service services.GalleryService, logger *logrus.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		logger:  logger,
	}
}

// ListGalleryImages godoc
// @Summary List gallery images
// @Tags gallery
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Gallery images"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /gallery [get]
func (h *GalleryHandler) ListGalleryImages(c *fiber.Ctx) error {
	ctx := c.Context()

	images, err := h.service.ListImages(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list gallery images")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve gallery")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Gallery retrieved successfully", images)
}

// UploadGalleryImages godoc
// @Summary Upload gallery images (admin)
// @Description Accepts one or more image files in the multipart "images" field
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Image files"
// @Success 201 {object} utils.StandardResponse "Uploaded images"
// @Failure 400 {object} utils.StandardResponse "No files uploaded"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /admin/gallery [post]
func (h *GalleryHandler) UploadGalleryImages(c *fiber.Ctx) error {
	ctx := c.Context()

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid multipart form")
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		fileHeaders = form.File["image"]
	}
	if len(fileHeaders) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No files uploaded")
	}

	files := make([]services.UploadInput, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		src, err := header.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file")
		}
		defer src.Close()

		files = append(files, services.UploadInput{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      src,
		})
	}

	images, err := h.service.UploadImages(ctx, files)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upload gallery images")
		return respondServiceError(c, err, "Failed to upload images")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Images uploaded successfully", images)
}

// DeleteGalleryImage godoc
// @Summary Delete a gallery image (admin)
// @Description Removes the tracking record and the stored object
// @Tags gallery
// @Accept json
// @Produce json
// @Param filename path string true "Stored object name"
// @Success 200 {object} utils.StandardResponse "Image deleted"
// @Failure 404 {object} utils.StandardResponse "Image not found"
// @Router /admin/gallery/{filename} [delete]
func (h *GalleryHandler) DeleteGalleryImage(c *fiber.Ctx) error {
	ctx := c.Context()

	filename, err := urlDecodeParam(c, "filename")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filename")
	}

	if err := h.service.DeleteImage(ctx, filename); err != nil {
		h.logger.WithError(err).WithField("filename", filename).Error("Failed to delete gallery image")
		return respondServiceError(c, err, "Failed to delete image")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Image deleted successfully", nil)
}

// ListGalleryVideos godoc
// @Summary List gallery videos
// @Tags gallery
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Gallery videos"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /gallery/videos [get]
func (h *GalleryHandler) ListGalleryVideos(c *fiber.Ctx) error {
	ctx := c.Context()

	videos, err := h.service.ListVideos(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list gallery videos")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve videos")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Videos retrieved successfully", videos)
}

// CreateGalleryVideo godoc
// @Summary Register a gallery video (admin)
// @Description Tracks an externally hosted video by URL
// @Tags gallery
// @Accept json
// @Produce json
// @Param video body GalleryVideoRequest true "Video"
// @Success 201 {object} utils.StandardResponse "Video created"
// @Failure 400 {object} utils.StandardResponse "Validation error"
// @Router /admin/gallery/videos [post]
func (h *GalleryHandler) CreateGalleryVideo(c *fiber.Ctx) error {
	ctx := c.Context()

	var req GalleryVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	video, err := h.service.CreateVideo(ctx, services.CreateVideoInput{
		TitleEn:  req.TitleEn,
		TitleNp:  req.TitleNp,
		VideoURL: req.VideoURL,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create gallery video")
		return respondServiceError(c, err, "Failed to create video")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Video created successfully", video)
}

// DeleteGalleryVideo godoc
// @Summary Delete a gallery video (admin)
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} utils.StandardResponse "Video deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid video ID"
// @Failure 404 {object} utils.StandardResponse "Video not found"
// @Router /admin/gallery/videos/{id} [delete]
func (h *GalleryHandler) DeleteGalleryVideo(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid video ID")
	}

	if err := h.service.DeleteVideo(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete gallery video")
		return respondServiceError(c, err, "Failed to delete video")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Video deleted successfully", nil)
}
