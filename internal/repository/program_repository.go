package repository

import (
	"context"
	"time"

	"campaign-backend/internal/database"
	"campaign-backend/internal/models"
)

type ProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Program, error)
	// FindAll returns all programs, newest date first.
	FindAll(ctx context.Context) ([]models.Program, error)
	// FindUpcoming returns programs dated from onOrAfter onwards, ascending
	// by date, capped at limit when limit > 0.
	FindUpcoming(ctx context.Context, onOrAfter time.Time, limit int) ([]models.Program, error)
}

type programRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewProgramRepository(db *database.Database) ProgramRepository {
	return &programRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *programRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *programRepository) Create(ctx context.Context, program *models.Program) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepository) Update(ctx context.Context, program *models.Program) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(program).Error
}

func (r *programRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Program{}, id).Error
}

func (r *programRepository) FindByID(ctx context.Context, id uint) (*models.Program, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var program models.Program
	if err := r.db.WithContext(ctx).First(&program, id).Error; err != nil {
		return nil, err
	}

	return &program, nil
}

func (r *programRepository) FindAll(ctx context.Context) ([]models.Program, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	programs := make([]models.Program, 0)
	err := r.db.WithContext(ctx).Order("date DESC").Find(&programs).Error
	if err != nil {
		return nil, err
	}

	return programs, nil
}

func (r *programRepository) FindUpcoming(ctx context.Context, onOrAfter time.Time, limit int) ([]models.Program, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	programs := make([]models.Program, 0)
	query := r.db.WithContext(ctx).
		Where("date >= ?", onOrAfter).
		Order("date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&programs).Error; err != nil {
		return nil, err
	}

	return programs, nil
}
