package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"campaign-backend/internal/models"
	"campaign-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// UploadInput is one incoming multipart file.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// CreateVideoInput registers an externally hosted video.
type CreateVideoInput struct {
	TitleEn  string
	TitleNp  string
	VideoURL string
}

type GalleryService interface {
	// UploadImages stores each file and tracks it as a gallery record.
	UploadImages(ctx context.Context, files []UploadInput) ([]models.GalleryImage, error)
	ListImages(ctx context.Context) ([]models.GalleryImage, error)
	// DeleteImage removes the tracking record and, best effort, the stored
	// object behind it.
	DeleteImage(ctx context.Context, filename string) error

	CreateVideo(ctx context.Context, input CreateVideoInput) (*models.GalleryVideo, error)
	ListVideos(ctx context.Context) ([]models.GalleryVideo, error)
	DeleteVideo(ctx context.Context, id uint) error
}

type galleryService struct {
	repo    repository.GalleryRepository
	storage *MinIOService
	logger  *logrus.Logger
}

func NewGalleryService(repo repository.GalleryRepository, storage *MinIOService, logger *logrus.Logger) GalleryService {
	return &galleryService{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

func (s *galleryService) UploadImages(ctx context.Context, files []UploadInput) ([]models.GalleryImage, error) {
	if len(files) == 0 {
		return nil, validationErrorf("no files uploaded")
	}

	uploaded := make([]models.GalleryImage, 0, len(files))
	for _, file := range files {
		objectName := s.storage.BuildObjectName(file.Filename)

		url, err := s.storage.UploadFile(ctx, objectName, file.Reader, file.Size, file.ContentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store %q: %w", file.Filename, err)
		}

		image := models.GalleryImage{
			Filename:   objectName,
			URL:        url,
			UploadedAt: time.Now().UTC(),
		}
		if err := s.repo.CreateImage(ctx, &image); err != nil {
			// The object is stored but untracked; remove it so the gallery
			// and the bucket do not drift apart.
			if delErr := s.storage.DeleteFile(objectName); delErr != nil {
				s.logger.WithError(delErr).WithField("objectName", objectName).Warn("Failed to remove orphaned upload")
			}
			return nil, fmt.Errorf("failed to track %q: %w", file.Filename, err)
		}

		uploaded = append(uploaded, image)
	}

	return uploaded, nil
}

func (s *galleryService) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	return s.repo.FindImages(ctx)
}

func (s *galleryService) DeleteImage(ctx context.Context, filename string) error {
	if filename == "" {
		return validationErrorf("filename is required")
	}

	image, err := s.repo.FindImageByFilename(ctx, filename)
	if err != nil {
		if isRecordNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.DeleteImage(ctx, image.ID); err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	// Stored object removal is best effort; the record is already gone.
	if err := s.storage.DeleteFile(image.Filename); err != nil {
		s.logger.WithError(err).WithField("filename", image.Filename).Warn("Failed to delete stored gallery object")
	}

	return nil
}

func (s *galleryService) CreateVideo(ctx context.Context, input CreateVideoInput) (*models.GalleryVideo, error) {
	if input.TitleEn == "" || input.VideoURL == "" {
		return nil, validationErrorf("title and video URL are required")
	}

	video := &models.GalleryVideo{
		TitleEn:    input.TitleEn,
		TitleNp:    input.TitleNp,
		VideoURL:   input.VideoURL,
		UploadedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateVideo(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to create gallery video: %w", err)
	}

	return video, nil
}

func (s *galleryService) ListVideos(ctx context.Context) ([]models.GalleryVideo, error) {
	return s.repo.FindVideos(ctx)
}

func (s *galleryService) DeleteVideo(ctx context.Context, id uint) error {
	if _, err := s.repo.FindVideoByID(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.DeleteVideo(ctx, id)
}
