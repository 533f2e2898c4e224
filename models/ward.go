package models

import (
	"gorm.io/gorm"
)

type Ward struct {
	gorm.Model
	WardName string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	Rooms    []Room
	Patients []Patient
}
