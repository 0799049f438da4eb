package models

import (
	"gorm.io/gorm"
)

// Типы материалов репетиции.
const (
	ResourceSetlist    = "setlist"
	ResourceSheetMusic = "sheet_music"
	ResourceRecording  = "recording"
	ResourceOther      = "other"
)

type Resource struct {
	gorm.Model
	RehearsalID uint      `gorm:"index;not null"`
	Rehearsal   Rehearsal `gorm:"foreignKey:RehearsalID;constraint:OnDelete:CASCADE"`
	Name        string    `gorm:"not null"`
	Type        string    `gorm:"not null"` // setlist, sheet_music, recording или other
	FileURL     string    `gorm:"not null"`
	UploadedBy  uint      `gorm:"not null"`
	Uploader    User      `gorm:"foreignKey:UploadedBy"`
}
