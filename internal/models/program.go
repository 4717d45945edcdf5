package models

import (
	"time"
)

// ProgramStatus is the lifecycle state of a scheduled campaign event.
type ProgramStatus string

const (
	ProgramStatusUpcoming  ProgramStatus = "UPCOMING"
	ProgramStatusOngoing   ProgramStatus = "ONGOING"
	ProgramStatusCompleted ProgramStatus = "COMPLETED"
	ProgramStatusCancelled ProgramStatus = "CANCELLED"
)

// ValidProgramStatuses enumerates every accepted status value.
var ValidProgramStatuses = map[ProgramStatus]struct{}{
	ProgramStatusUpcoming:  {},
	ProgramStatusOngoing:   {},
	ProgramStatusCompleted: {},
	ProgramStatusCancelled: {},
}

// Program is a scheduled campaign event with bilingual title, location and
// display time. The public list only shows future-dated entries.
type Program struct {
	ID         uint          `gorm:"primaryKey" json:"id" example:"1"`
	TitleEn    string        `gorm:"not null" json:"titleEn" example:"Ward Assembly"`
	TitleNp    string        `json:"titleNp"`
	LocationEn string        `json:"locationEn" example:"Kathmandu"`
	LocationNp string        `json:"locationNp"`
	Date       time.Time     `gorm:"index;not null" json:"date"`
	TimeEn     string        `json:"timeEn" example:"10:00 AM"`
	TimeNp     string        `json:"timeNp"`
	Status     ProgramStatus `gorm:"not null;default:UPCOMING" json:"status" example:"UPCOMING"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (Program) TableName() string {
	return "programs"
}
