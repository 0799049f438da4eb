package models

import (
	"gorm.io/gorm"
)

type Band struct {
	gorm.Model
	Name        string `gorm:"not null"` // Название группы
	Description string
	CreatedBy   uint `gorm:"index;not null"` // ID пользователя-создателя
	Creator     User `gorm:"foreignKey:CreatedBy"`
}
