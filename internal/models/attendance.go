package models

import (
	"time"

	"gorm.io/gorm"
)

// Статусы ответа участника на репетицию.
const (
	StatusAttending    = "attending"
	StatusMaybe        = "maybe"
	StatusNotAttending = "not_attending"
)

type Attendance struct {
	gorm.Model
	RehearsalID uint      `gorm:"uniqueIndex:idx_rehearsal_user;not null"` // Пара (RehearsalID, UserID) уникальна: один ответ на репетицию
	Rehearsal   Rehearsal `gorm:"foreignKey:RehearsalID;constraint:OnDelete:CASCADE"`
	UserID      uint      `gorm:"uniqueIndex:idx_rehearsal_user;not null"`
	User        User      `gorm:"foreignKey:UserID"`
	Status      string    `gorm:"not null;default:maybe"` // attending, maybe или not_attending
	Comment     string
	RespondedAt time.Time `gorm:"not null"` // Обновляется при каждой записи ответа
}
