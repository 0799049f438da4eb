package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name              string `gorm:"not null"`
	Surname           string `gorm:"not null"`
	Email             string `gorm:"uniqueIndex;not null"`
	PasswordHash      string `gorm:"not null"`
	Phone             string
	ResetToken        string     // Токен сброса пароля (пустая строка — токен не выдан)
	ResetTokenExpires *time.Time // Срок действия токена сброса (nil — токен не выдан)
}
