package services

import (
	"context"
	"fmt"
	"strings"

	"campaign-backend/internal/models"
	"campaign-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// SettingsPage is the fixed partition the settings endpoints operate on.
const SettingsPage = "settings"

// UpsertContentInput is one (page, key) save. Page defaults to "home" and
// Type to RICH_TEXT when omitted.
type UpsertContentInput struct {
	Page    string
	Key     string
	Type    models.ContentType
	ValueEn string
	ValueNp string
}

// UpdateContentInput is a partial by-id patch; nil fields are left unchanged.
type UpdateContentInput struct {
	Page    *string
	Key     *string
	Type    *models.ContentType
	ValueEn *string
	ValueNp *string
}

type ContentService interface {
	Upsert(ctx context.Context, input UpsertContentInput) (*models.Content, error)
	ListByPage(ctx context.Context, page string) ([]models.Content, error)
	GetByID(ctx context.Context, id uint) (*models.Content, error)
	UpdateByID(ctx context.Context, id uint, input UpdateContentInput) (*models.Content, error)
	DeleteByID(ctx context.Context, id uint) error

	ListSettings(ctx context.Context) ([]models.Content, error)
	SaveSettings(ctx context.Context, entries []UpsertContentInput) error
}

type contentService struct {
	repo   repository.ContentRepository
	logger *logrus.Logger
}

func NewContentService(repo repository.ContentRepository, logger *logrus.Logger) ContentService {
	return &contentService{
		repo:   repo,
		logger: logger,
	}
}

func (s *contentService) Upsert(ctx context.Context, input UpsertContentInput) (*models.Content, error) {
	if strings.TrimSpace(input.Key) == "" {
		return nil, validationErrorf("key is required")
	}
	if input.Page == "" {
		input.Page = "home"
	}
	if input.Type == "" {
		input.Type = models.ContentTypeRichText
	}
	if _, ok := models.ValidContentTypes[input.Type]; !ok {
		return nil, validationErrorf("invalid content type %q", input.Type)
	}

	content := &models.Content{
		Page:    input.Page,
		Key:     input.Key,
		Type:    input.Type,
		ValueEn: input.ValueEn,
		ValueNp: input.ValueNp,
	}

	stored, err := s.repo.Upsert(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert content: %w", err)
	}

	return stored, nil
}

func (s *contentService) ListByPage(ctx context.Context, page string) ([]models.Content, error) {
	if page == "" {
		page = "home"
	}
	return s.repo.FindByPage(ctx, page)
}

func (s *contentService) GetByID(ctx context.Context, id uint) (*models.Content, error) {
	content, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return content, nil
}

func (s *contentService) UpdateByID(ctx context.Context, id uint, input UpdateContentInput) (*models.Content, error) {
	content, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Page != nil {
		content.Page = *input.Page
	}
	if input.Key != nil {
		if strings.TrimSpace(*input.Key) == "" {
			return nil, validationErrorf("key is required")
		}
		content.Key = *input.Key
	}
	if input.Type != nil {
		if _, ok := models.ValidContentTypes[*input.Type]; !ok {
			return nil, validationErrorf("invalid content type %q", *input.Type)
		}
		content.Type = *input.Type
	}
	if input.ValueEn != nil {
		content.ValueEn = *input.ValueEn
	}
	if input.ValueNp != nil {
		content.ValueNp = *input.ValueNp
	}

	if err := s.repo.Update(ctx, content); err != nil {
		// Moving a record onto an occupied (page, key) pair is a caller
		// mistake, unlike the upsert path where the conflict is absorbed.
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("content key %q already exists for page %q: %w", content.Key, content.Page, ErrDuplicate)
		}
		return nil, err
	}

	return content, nil
}

func (s *contentService) DeleteByID(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *contentService) ListSettings(ctx context.Context) ([]models.Content, error) {
	return s.repo.FindByPage(ctx, SettingsPage)
}

// SaveSettings upserts a batch of settings entries, forcing the settings
// partition regardless of what the caller sent.
func (s *contentService) SaveSettings(ctx context.Context, entries []UpsertContentInput) error {
	for _, entry := range entries {
		entry.Page = SettingsPage
		if entry.Type == "" {
			entry.Type = models.ContentTypeSettings
		}
		if _, err := s.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("failed to save setting %q: %w", entry.Key, err)
		}
	}
	return nil
}
