package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campaign-backend/internal/models"
	"campaign-backend/internal/repository"
	"campaign-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

// CreateBlogInput carries a new article. Slug is derived from TitleEn when
// empty.
type CreateBlogInput struct {
	TitleEn       string
	TitleNp       string
	Slug          string
	ContentEn     string
	ContentNp     string
	ExcerptEn     string
	ExcerptNp     string
	FeaturedImage string
	Published     bool
}

// UpdateBlogInput is a partial patch; nil fields are left unchanged.
type UpdateBlogInput struct {
	TitleEn       *string
	TitleNp       *string
	Slug          *string
	ContentEn     *string
	ContentNp     *string
	ExcerptEn     *string
	ExcerptNp     *string
	FeaturedImage *string
	Published     *bool
}

type BlogService interface {
	Create(ctx context.Context, input CreateBlogInput) (*models.Blog, error)
	Update(ctx context.Context, id uint, input UpdateBlogInput) (*models.Blog, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	List(ctx context.Context, publishedOnly bool, page, limit int) ([]models.Blog, int64, error)
	IncrementViews(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*models.BlogStats, error)
}

type blogService struct {
	repo    repository.BlogRepository
	storage *MinIOService
	logger  *logrus.Logger
}

func NewBlogService(repo repository.BlogRepository, logger *logrus.Logger) BlogService {
	return &blogService{
		repo:   repo,
		logger: logger,
	}
}

// SetStorageService enables best-effort cleanup of replaced featured images.
func (s *blogService) SetStorageService(storage *MinIOService) {
	s.storage = storage
}

func (s *blogService) Create(ctx context.Context, input CreateBlogInput) (*models.Blog, error) {
	if input.TitleEn == "" || input.TitleNp == "" {
		return nil, validationErrorf("English and Nepali titles are required")
	}

	slug := input.Slug
	if slug == "" {
		slug = input.TitleEn
	}
	slug = utils.Slugify(slug)
	if slug == "" {
		return nil, validationErrorf("slug cannot be derived from title, provide one explicitly")
	}

	blog := &models.Blog{
		TitleEn:       input.TitleEn,
		TitleNp:       input.TitleNp,
		Slug:          slug,
		ContentEn:     input.ContentEn,
		ContentNp:     input.ContentNp,
		ExcerptEn:     input.ExcerptEn,
		ExcerptNp:     input.ExcerptNp,
		FeaturedImage: input.FeaturedImage,
		Published:     input.Published,
	}
	if input.Published {
		now := time.Now().UTC()
		blog.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("a blog with slug %q already exists: %w", slug, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	return blog, nil
}

func (s *blogService) Update(ctx context.Context, id uint, input UpdateBlogInput) (*models.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	oldImage := blog.FeaturedImage

	if input.TitleEn != nil {
		blog.TitleEn = *input.TitleEn
		// Re-derive the slug on title change unless the caller pinned one.
		if input.Slug == nil {
			blog.Slug = utils.Slugify(*input.TitleEn)
		}
	}
	if input.Slug != nil {
		blog.Slug = utils.Slugify(*input.Slug)
	}
	if blog.Slug == "" {
		return nil, validationErrorf("slug cannot be empty")
	}
	if input.TitleNp != nil {
		blog.TitleNp = *input.TitleNp
	}
	if input.ContentEn != nil {
		blog.ContentEn = *input.ContentEn
	}
	if input.ContentNp != nil {
		blog.ContentNp = *input.ContentNp
	}
	if input.ExcerptEn != nil {
		blog.ExcerptEn = *input.ExcerptEn
	}
	if input.ExcerptNp != nil {
		blog.ExcerptNp = *input.ExcerptNp
	}
	if input.FeaturedImage != nil {
		blog.FeaturedImage = *input.FeaturedImage
	}
	if input.Published != nil && *input.Published != blog.Published {
		blog.Published = *input.Published
		if blog.Published {
			now := time.Now().UTC()
			blog.PublishedAt = &now
		} else {
			blog.PublishedAt = nil
		}
	}

	if err := s.repo.Update(ctx, blog); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("a blog with slug %q already exists: %w", blog.Slug, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	// Cleanup runs only after the save is confirmed, so a failed save never
	// orphans an image the stored content still references.
	if blog.FeaturedImage != oldImage {
		s.cleanupReplacedImage(oldImage)
	}

	return blog, nil
}

func (s *blogService) cleanupReplacedImage(oldURL string) {
	if s.storage == nil || oldURL == "" {
		return
	}
	if !strings.Contains(oldURL, "http") || !strings.Contains(oldURL, s.storage.BucketName()) {
		return
	}

	parts := strings.Split(oldURL, "/")
	filename := parts[len(parts)-1]
	if idx := strings.Index(filename, "?"); idx != -1 {
		filename = filename[:idx]
	}

	if err := s.storage.DeleteFile(filename); err != nil {
		s.logger.WithError(err).WithField("filename", filename).Warn("Failed to delete replaced featured image")
	}
}

func (s *blogService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *blogService) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	blog, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *blogService) List(ctx context.Context, publishedOnly bool, page, limit int) ([]models.Blog, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.FindAll(ctx, publishedOnly, page, limit)
}

func (s *blogService) IncrementViews(ctx context.Context, id uint) error {
	affected, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *blogService) Stats(ctx context.Context) (*models.BlogStats, error) {
	return s.repo.Stats(ctx)
}
