package models

import (
	"time"
)

// Blog is a bilingual article. Slug is derived from the English title when
// not supplied explicitly and is unique across all posts.
type Blog struct {
	ID            uint       `gorm:"primaryKey" json:"id" example:"1"`
	TitleEn       string     `gorm:"not null;index" json:"titleEn" example:"A New Chapter"`
	TitleNp       string     `gorm:"not null" json:"titleNp"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug" example:"a-new-chapter"`
	ContentEn     string     `gorm:"type:text" json:"contentEn"`
	ContentNp     string     `gorm:"type:text" json:"contentNp"`
	ExcerptEn     string     `gorm:"type:text" json:"excerptEn"`
	ExcerptNp     string     `gorm:"type:text" json:"excerptNp"`
	FeaturedImage string     `json:"featuredImage"`
	Published     bool       `gorm:"index;default:false" json:"published"`
	PublishedAt   *time.Time `gorm:"index" json:"publishedAt"`
	Views         int64      `gorm:"default:0" json:"views" example:"42"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Blog) TableName() string {
	return "blogs"
}

// BlogStats aggregates dashboard counters for the admin overview.
type BlogStats struct {
	Total     int64 `json:"total" example:"12"`
	Published int64 `json:"published" example:"9"`
	Views     int64 `json:"views" example:"3400"`
}
