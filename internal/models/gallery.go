package models

import (
	"time"
)

// GalleryImage tracks one uploaded image as a first-class record. Deleting it
// also removes the stored object.
type GalleryImage struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	Filename   string    `gorm:"uniqueIndex;not null" json:"filename" example:"1714720000-rally_photo.jpg"`
	URL        string    `gorm:"not null" json:"url"`
	UploadedAt time.Time `gorm:"index" json:"uploadedAt"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}

// GalleryVideo is an externally hosted video referenced by URL (typically a
// YouTube embed), not an uploaded file.
type GalleryVideo struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	TitleEn    string    `gorm:"not null" json:"titleEn" example:"Campaign Launch"`
	TitleNp    string    `json:"titleNp"`
	VideoURL   string    `gorm:"not null" json:"videoUrl"`
	UploadedAt time.Time `gorm:"index" json:"uploadedAt"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (GalleryVideo) TableName() string {
	return "gallery_videos"
}
