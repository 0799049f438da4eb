package models

import (
	"time"

	"gorm.io/gorm"
)

// Роли участников группы.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type BandMember struct {
	gorm.Model
	BandID      uint   `gorm:"uniqueIndex:idx_band_user;not null"` // Пара (BandID, UserID) уникальна: повторное вступление невозможно
	Band        Band   `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
	UserID      uint   `gorm:"uniqueIndex:idx_band_user;not null"`
	User        User   `gorm:"foreignKey:UserID"`
	Role        string `gorm:"not null;default:member"` // admin или member
	Instruments string // Инструменты участника, свободный текст
	JoinedAt    time.Time
}
