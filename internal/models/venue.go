package models

import (
	"gorm.io/gorm"
)

type Venue struct {
	gorm.Model
	BandID      uint   `gorm:"index;not null"`
	Band        Band   `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
	Name        string `gorm:"not null"` // Название площадки
	Address     string
	Description string
}
