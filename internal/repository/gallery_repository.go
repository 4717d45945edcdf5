package repository

import (
	"context"
	"time"

	"campaign-backend/internal/database"
	"campaign-backend/internal/models"
)

type GalleryRepository interface {
	CreateImage(ctx context.Context, image *models.GalleryImage) error
	FindImages(ctx context.Context) ([]models.GalleryImage, error)
	FindImageByFilename(ctx context.Context, filename string) (*models.GalleryImage, error)
	DeleteImage(ctx context.Context, id uint) error

	CreateVideo(ctx context.Context, video *models.GalleryVideo) error
	FindVideos(ctx context.Context) ([]models.GalleryVideo, error)
	FindVideoByID(ctx context.Context, id uint) (*models.GalleryVideo, error)
	DeleteVideo(ctx context.Context, id uint) error
}

type galleryRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGalleryRepository(db *database.Database) GalleryRepository {
	return &galleryRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *galleryRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *galleryRepository) CreateImage(ctx context.Context, image *models.GalleryImage) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepository) FindImages(ctx context.Context) ([]models.GalleryImage, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	images := make([]models.GalleryImage, 0)
	err := r.db.WithContext(ctx).Order("uploaded_at DESC").Find(&images).Error
	if err != nil {
		return nil, err
	}

	return images, nil
}

func (r *galleryRepository) FindImageByFilename(ctx context.Context, filename string) (*models.GalleryImage, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var image models.GalleryImage
	if err := r.db.WithContext(ctx).Where("filename = ?", filename).First(&image).Error; err != nil {
		return nil, err
	}

	return &image, nil
}

func (r *galleryRepository) DeleteImage(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.GalleryImage{}, id).Error
}

func (r *galleryRepository) CreateVideo(ctx context.Context, video *models.GalleryVideo) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(video).Error
}

func (r *galleryRepository) FindVideos(ctx context.Context) ([]models.GalleryVideo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	videos := make([]models.GalleryVideo, 0)
	err := r.db.WithContext(ctx).Order("uploaded_at DESC").Find(&videos).Error
	if err != nil {
		return nil, err
	}

	return videos, nil
}

func (r *galleryRepository) FindVideoByID(ctx context.Context, id uint) (*models.GalleryVideo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var video models.GalleryVideo
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		return nil, err
	}

	return &video, nil
}

func (r *galleryRepository) DeleteVideo(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.GalleryVideo{}, id).Error
}
