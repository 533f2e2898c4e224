package models

import "gorm.io/gorm"

type Room struct {
	gorm.Model
	RoomNumber string `gorm:"not null"`
	WardID     uint   // FK → wards.id
	Patients   []Patient
}
