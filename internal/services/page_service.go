package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"campaign-backend/internal/models"
	"campaign-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// KeySpec declares one key a page expects and how its value is interpreted.
// The schema's type wins over whatever type tag a record was saved with.
type KeySpec struct {
	Key  string
	Type models.ContentType
}

// pageSchemas lists the well-known keys per public page. Pages missing here
// are resolved generically using each record's stored type tag.
var pageSchemas = map[string][]KeySpec{
	"home": {
		{Key: "hero", Type: models.ContentTypeHero},
		{Key: "stats", Type: models.ContentTypeStats},
		{Key: "vision_preview", Type: models.ContentTypeVision},
	},
	"about": {
		{Key: "about_header", Type: models.ContentTypeAboutMeta},
		{Key: "bio_intro", Type: models.ContentTypeRichText},
		{Key: "political_journey", Type: models.ContentTypeRichText},
		{Key: "core_values", Type: models.ContentTypeJSONList},
		{Key: "achievements", Type: models.ContentTypeRichText},
	},
	"vision": {
		{Key: "vision_page", Type: models.ContentTypeVisionBuilder},
	},
	"experience": {
		{Key: "experience_page", Type: models.ContentTypeExperienceEditor},
	},
}

// ResolvedValue is one resolved key: plain text for flat types, decoded JSON
// for structured ones.
type ResolvedValue struct {
	Type models.ContentType `json:"type"`
	Text string             `json:"text,omitempty"`
	Data interface{}        `json:"data,omitempty"`
}

type PageService interface {
	// ResolvePage turns the flat content set of a page into the key-addressed
	// localized values a renderer consumes. Keys with no stored record are
	// omitted so clients keep their own defaults.
	ResolvePage(ctx context.Context, page, locale string) (map[string]ResolvedValue, error)
}

type pageService struct {
	repo   repository.ContentRepository
	logger *logrus.Logger
}

func NewPageService(repo repository.ContentRepository, logger *logrus.Logger) PageService {
	return &pageService{
		repo:   repo,
		logger: logger,
	}
}

func (s *pageService) ResolvePage(ctx context.Context, page, locale string) (map[string]ResolvedValue, error) {
	if page == "" {
		page = "home"
	}
	if locale != "np" {
		locale = "en"
	}

	contents, err := s.repo.FindByPage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content for page %q: %w", page, err)
	}

	byKey := make(map[string]models.Content, len(contents))
	for _, c := range contents {
		byKey[c.Key] = c
	}

	resolved := make(map[string]ResolvedValue)

	if schema, ok := pageSchemas[page]; ok {
		for _, spec := range schema {
			record, ok := byKey[spec.Key]
			if !ok {
				continue
			}
			resolved[spec.Key] = s.resolveValue(page, spec.Key, spec.Type, record, locale)
		}
		return resolved, nil
	}

	for key, record := range byKey {
		resolved[key] = s.resolveValue(page, key, record.Type, record, locale)
	}
	return resolved, nil
}

func (s *pageService) resolveValue(page, key string, contentType models.ContentType, record models.Content, locale string) ResolvedValue {
	// Locale fallback: an empty Nepali value falls back to English.
	value := record.ValueEn
	if locale == "np" && strings.TrimSpace(record.ValueNp) != "" {
		value = record.ValueNp
	}

	if !contentType.IsStructured() {
		return ResolvedValue{Type: contentType, Text: value}
	}

	return ResolvedValue{Type: contentType, Data: s.parseOrEmpty(page, key, contentType, value)}
}

// parseOrEmpty decodes a structured value, substituting an empty object or
// array on failure. Malformed admin-entered JSON degrades the affected
// section instead of breaking the page. The empty shape follows the declared
// type so consumers of list-typed keys always receive an array, even when the
// stored value is blank.
func (s *pageService) parseOrEmpty(page, key string, contentType models.ContentType, value string) interface{} {
	trimmed := strings.TrimSpace(value)

	var data interface{}
	if trimmed != "" {
		if err := json.Unmarshal([]byte(trimmed), &data); err == nil {
			return data
		} else {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"page": page,
				"key":  key,
			}).Warn("Malformed stored JSON, substituting empty value")
		}
	}

	switch contentType {
	case models.ContentTypeJSONList, models.ContentTypeStats:
		return []interface{}{}
	}
	return map[string]interface{}{}
}
