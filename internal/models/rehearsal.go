package models

import (
	"time"

	"gorm.io/gorm"
)

type Rehearsal struct {
	gorm.Model
	BandID            uint         `gorm:"index;not null"`
	Band              Band         `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
	VenueID           *uint        `gorm:"index"` // Площадка опциональна; при удалении площадки ссылка обнуляется
	Venue             *Venue       `gorm:"foreignKey:VenueID;constraint:OnDelete:SET NULL"`
	Title             string       `gorm:"not null"`
	Description       string
	StartTime         time.Time    `gorm:"index;not null"` // Начало репетиции
	EndTime           time.Time    `gorm:"not null"`       // Окончание репетиции
	IsRecurring       bool         `gorm:"default:false"`
	RecurrencePattern string       // Шаблон повторения, хранится как есть и не интерпретируется
	CreatedBy         uint         `gorm:"not null"`
	Attendance        []Attendance `gorm:"foreignKey:RehearsalID"`
	Resources         []Resource   `gorm:"foreignKey:RehearsalID"`
}
