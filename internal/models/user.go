package models

import (
	"time"
)

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
)

// User is an admin-panel account. Password holds a bcrypt hash and is never
// serialized in responses.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name      string    `gorm:"not null" json:"name" example:"Administrator"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email" example:"admin@example.com"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:EDITOR" json:"role" example:"ADMIN"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
