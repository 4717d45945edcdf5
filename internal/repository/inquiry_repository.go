package repository

import (
	"context"
	"time"

	"campaign-backend/internal/database"
	"campaign-backend/internal/models"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	Update(ctx context.Context, inquiry *models.Inquiry) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Inquiry, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Inquiry, int64, error)
}

type inquiryRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewInquiryRepository(db *database.Database) InquiryRepository {
	return &inquiryRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *inquiryRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *inquiryRepository) Update(ctx context.Context, inquiry *models.Inquiry) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(inquiry).Error
}

func (r *inquiryRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Inquiry{}, id).Error
}

func (r *inquiryRepository) FindByID(ctx context.Context, id uint) (*models.Inquiry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var inquiry models.Inquiry
	if err := r.db.WithContext(ctx).First(&inquiry, id).Error; err != nil {
		return nil, err
	}

	return &inquiry, nil
}

func (r *inquiryRepository) FindAll(ctx context.Context, page, limit int) ([]models.Inquiry, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Inquiry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	inquiries := make([]models.Inquiry, 0)
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		offset := (page - 1) * limit
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&inquiries).Error; err != nil {
		return nil, 0, err
	}

	return inquiries, total, nil
}
