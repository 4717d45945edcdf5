package models

import (
	"time"
)

// ContentType tags how ValueEn/ValueNp should be interpreted by a renderer.
// It is a rendering hint only; the store never enforces it.
type ContentType string

const (
	ContentTypeHero             ContentType = "HERO"
	ContentTypeAbout            ContentType = "ABOUT"
	ContentTypeVision           ContentType = "VISION"
	ContentTypeExperience       ContentType = "EXPERIENCE"
	ContentTypeContact          ContentType = "CONTACT"
	ContentTypeManifesto        ContentType = "MANIFESTO"
	ContentTypeRichText         ContentType = "RICH_TEXT"
	ContentTypeStats            ContentType = "STATS"
	ContentTypeAboutMeta        ContentType = "ABOUT_META"
	ContentTypeJSONList         ContentType = "JSON_LIST"
	ContentTypeVisionBuilder    ContentType = "VISION_BUILDER"
	ContentTypeExperienceEditor ContentType = "EXPERIENCE_EDITOR"
	ContentTypeSettings         ContentType = "SETTINGS"
	ContentTypeSocial           ContentType = "SOCIAL"
)

// ValidContentTypes enumerates every accepted type tag.
var ValidContentTypes = map[ContentType]struct{}{
	ContentTypeHero:             {},
	ContentTypeAbout:            {},
	ContentTypeVision:           {},
	ContentTypeExperience:       {},
	ContentTypeContact:          {},
	ContentTypeManifesto:        {},
	ContentTypeRichText:         {},
	ContentTypeStats:            {},
	ContentTypeAboutMeta:        {},
	ContentTypeJSONList:         {},
	ContentTypeVisionBuilder:    {},
	ContentTypeExperienceEditor: {},
	ContentTypeSettings:         {},
	ContentTypeSocial:           {},
}

// IsStructured reports whether values of this type carry JSON that renderers
// are expected to decode.
func (t ContentType) IsStructured() bool {
	switch t {
	case ContentTypeHero, ContentTypeStats, ContentTypeAboutMeta, ContentTypeJSONList,
		ContentTypeVisionBuilder, ContentTypeExperienceEditor, ContentTypeVision:
		return true
	}
	return false
}

// Content is one named, localized piece of page content, uniquely addressed
// by the (page, key) pair.
type Content struct {
	ID        uint        `gorm:"primaryKey" json:"id" example:"1"`
	Page      string      `gorm:"not null;default:home;uniqueIndex:idx_contents_page_key" json:"page" example:"home"`
	Key       string      `gorm:"not null;uniqueIndex:idx_contents_page_key" json:"key" example:"hero"`
	Type      ContentType `gorm:"not null;default:RICH_TEXT" json:"type" example:"RICH_TEXT"`
	ValueEn   string      `gorm:"type:text" json:"valueEn"`
	ValueNp   string      `gorm:"type:text" json:"valueNp"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Content) TableName() string {
	return "contents"
}
