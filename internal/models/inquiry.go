package models

import (
	"time"
)

// Inquiry is a contact-form submission. Content fields are never edited after
// creation; only the read flag is toggled.
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name      string    `gorm:"not null" json:"name" example:"Ram Thapa"`
	Email     string    `gorm:"not null" json:"email" example:"ram@example.com"`
	Subject   string    `gorm:"default:'No Subject'" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"index;default:false" json:"isRead"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}
