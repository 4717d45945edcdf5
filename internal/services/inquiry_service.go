package services

import (
	"context"
	"fmt"

	"campaign-backend/internal/models"
	"campaign-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// CreateInquiryInput is a public contact-form submission.
type CreateInquiryInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type InquiryService interface {
	Create(ctx context.Context, input CreateInquiryInput) (*models.Inquiry, error)
	List(ctx context.Context, page, limit int) ([]models.Inquiry, int64, error)
	// ToggleRead flips the read flag and returns the new state.
	ToggleRead(ctx context.Context, id uint) (*models.Inquiry, error)
	Delete(ctx context.Context, id uint) error
}

type inquiryService struct {
	repo   repository.InquiryRepository
	logger *logrus.Logger
}

func NewInquiryService(repo repository.InquiryRepository, logger *logrus.Logger) InquiryService {
	return &inquiryService{
		repo:   repo,
		logger: logger,
	}
}

func (s *inquiryService) Create(ctx context.Context, input CreateInquiryInput) (*models.Inquiry, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, validationErrorf("name, email and message are required")
	}

	subject := input.Subject
	if subject == "" {
		subject = "No Subject"
	}

	inquiry := &models.Inquiry{
		Name:    input.Name,
		Email:   input.Email,
		Subject: subject,
		Message: input.Message,
		IsRead:  false,
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	return inquiry, nil
}

func (s *inquiryService) List(ctx context.Context, page, limit int) ([]models.Inquiry, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.FindAll(ctx, page, limit)
}

func (s *inquiryService) ToggleRead(ctx context.Context, id uint) (*models.Inquiry, error) {
	inquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	inquiry.IsRead = !inquiry.IsRead
	if err := s.repo.Update(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}

	return inquiry, nil
}

func (s *inquiryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
