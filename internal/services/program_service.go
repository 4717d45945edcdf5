package services

import (
	"context"
	"fmt"
	"time"

	"campaign-backend/internal/models"
	"campaign-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// CreateProgramInput carries a new campaign event.
type CreateProgramInput struct {
	TitleEn    string
	TitleNp    string
	LocationEn string
	LocationNp string
	Date       time.Time
	TimeEn     string
	TimeNp     string
	Status     models.ProgramStatus
}

// UpdateProgramInput is a partial patch; nil fields are left unchanged.
type UpdateProgramInput struct {
	TitleEn    *string
	TitleNp    *string
	LocationEn *string
	LocationNp *string
	Date       *time.Time
	TimeEn     *string
	TimeNp     *string
	Status     *models.ProgramStatus
}

type ProgramService interface {
	Create(ctx context.Context, input CreateProgramInput) (*models.Program, error)
	Update(ctx context.Context, id uint, input UpdateProgramInput) (*models.Program, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Program, error)
	// ListAdmin returns every program, newest date first.
	ListAdmin(ctx context.Context) ([]models.Program, error)
	// ListPublic returns programs dated today or later, ascending.
	ListPublic(ctx context.Context, limit int) ([]models.Program, error)
}

type programService struct {
	repo   repository.ProgramRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewProgramService(repo repository.ProgramRepository, logger *logrus.Logger) ProgramService {
	return &programService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *programService) Create(ctx context.Context, input CreateProgramInput) (*models.Program, error) {
	if input.TitleEn == "" {
		return nil, validationErrorf("English title is required")
	}
	if input.Date.IsZero() {
		return nil, validationErrorf("date is required")
	}

	status := input.Status
	if status == "" {
		status = models.ProgramStatusUpcoming
	}
	if _, ok := models.ValidProgramStatuses[status]; !ok {
		return nil, validationErrorf("invalid program status %q", status)
	}

	program := &models.Program{
		TitleEn:    input.TitleEn,
		TitleNp:    input.TitleNp,
		LocationEn: input.LocationEn,
		LocationNp: input.LocationNp,
		Date:       input.Date,
		TimeEn:     input.TimeEn,
		TimeNp:     input.TimeNp,
		Status:     status,
	}

	if err := s.repo.Create(ctx, program); err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}

	return program, nil
}

func (s *programService) Update(ctx context.Context, id uint, input UpdateProgramInput) (*models.Program, error) {
	program, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.TitleEn != nil {
		if *input.TitleEn == "" {
			return nil, validationErrorf("English title is required")
		}
		program.TitleEn = *input.TitleEn
	}
	if input.TitleNp != nil {
		program.TitleNp = *input.TitleNp
	}
	if input.LocationEn != nil {
		program.LocationEn = *input.LocationEn
	}
	if input.LocationNp != nil {
		program.LocationNp = *input.LocationNp
	}
	if input.Date != nil {
		program.Date = *input.Date
	}
	if input.TimeEn != nil {
		program.TimeEn = *input.TimeEn
	}
	if input.TimeNp != nil {
		program.TimeNp = *input.TimeNp
	}
	if input.Status != nil {
		if _, ok := models.ValidProgramStatuses[*input.Status]; !ok {
			return nil, validationErrorf("invalid program status %q", *input.Status)
		}
		program.Status = *input.Status
	}

	if err := s.repo.Update(ctx, program); err != nil {
		return nil, fmt.Errorf("failed to update program: %w", err)
	}

	return program, nil
}

func (s *programService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *programService) GetByID(ctx context.Context, id uint) (*models.Program, error) {
	program, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return program, nil
}

func (s *programService) ListAdmin(ctx context.Context) ([]models.Program, error) {
	return s.repo.FindAll(ctx)
}

func (s *programService) ListPublic(ctx context.Context, limit int) ([]models.Program, error) {
	// Same-day programs still count as upcoming, so cut off at midnight UTC.
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return s.repo.FindUpcoming(ctx, today, limit)
}
