package repository

import (
	"context"
	"time"

	"campaign-backend/internal/database"
	"campaign-backend/internal/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	FindAll(ctx context.Context, publishedOnly bool, page, limit int) ([]models.Blog, int64, error)
	// IncrementViews bumps the view counter SQL-side so concurrent viewers
	// never lose updates.
	IncrementViews(ctx context.Context, id uint) (int64, error)
	Stats(ctx context.Context) (*models.BlogStats, error)
}

type blogRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewBlogRepository(db *database.Database) BlogRepository {
	return &blogRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *blogRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(blog).Error
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Blog{}, id).Error
}

func (r *blogRepository) FindByID(ctx context.Context, id uint) (*models.Blog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var blog models.Blog
	if err := r.db.WithContext(ctx).First(&blog, id).Error; err != nil {
		return nil, err
	}

	return &blog, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var blog models.Blog
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&blog).Error; err != nil {
		return nil, err
	}

	return &blog, nil
}

func (r *blogRepository) FindAll(ctx context.Context, publishedOnly bool, page, limit int) ([]models.Blog, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Blog{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	blogs := make([]models.Blog, 0)
	listQuery := query.Order("published_at DESC NULLS LAST, created_at DESC")
	if limit > 0 {
		offset := (page - 1) * limit
		listQuery = listQuery.Offset(offset).Limit(limit)
	}
	if err := listQuery.Find(&blogs).Error; err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (r *blogRepository) IncrementViews(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.Blog{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))

	return result.RowsAffected, result.Error
}

func (r *blogRepository) Stats(ctx context.Context) (*models.BlogStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var stats models.BlogStats
	db := r.db.WithContext(ctx).Model(&models.Blog{})

	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Blog{}).
		Where("published = ?", true).
		Count(&stats.Published).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Blog{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&stats.Views).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
