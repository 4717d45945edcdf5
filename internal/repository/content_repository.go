package repository

import (
	"context"
	"time"

	"campaign-backend/internal/database"
	"campaign-backend/internal/models"

	"gorm.io/gorm/clause"
)

type ContentRepository interface {
	// Upsert inserts or overwrites the record for (page, key) in a single
	// conflict-safe statement and returns the stored row.
	Upsert(ctx context.Context, content *models.Content) (*models.Content, error)
	FindByPage(ctx context.Context, page string) ([]models.Content, error)
	FindByID(ctx context.Context, id uint) (*models.Content, error)
	Update(ctx context.Context, content *models.Content) error
	Delete(ctx context.Context, id uint) error
}

type contentRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewContentRepository(db *database.Database) ContentRepository {
	return &contentRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *contentRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *contentRepository) Upsert(ctx context.Context, content *models.Content) (*models.Content, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// ON CONFLICT (page, key) DO UPDATE keeps concurrent saves from producing
	// two rows and absorbs the uniqueness violation into an overwrite.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "page"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "value_en", "value_np", "updated_at"}),
		}).
		Create(content).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller always sees the stored row, including the ID of a
	// pre-existing record that was overwritten.
	var stored models.Content
	err = r.db.WithContext(ctx).
		Where("page = ? AND key = ?", content.Page, content.Key).
		First(&stored).Error
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *contentRepository) FindByPage(ctx context.Context, page string) ([]models.Content, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	contents := make([]models.Content, 0)
	err := r.db.WithContext(ctx).Where("page = ?", page).Find(&contents).Error
	if err != nil {
		return nil, err
	}

	return contents, nil
}

func (r *contentRepository) FindByID(ctx context.Context, id uint) (*models.Content, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var content models.Content
	if err := r.db.WithContext(ctx).First(&content, id).Error; err != nil {
		return nil, err
	}

	return &content, nil
}

func (r *contentRepository) Update(ctx context.Context, content *models.Content) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(content).Error
}

func (r *contentRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Content{}, id).Error
}
