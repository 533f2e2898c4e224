package models

import "gorm.io/gorm"

// FoodType is a dietary regimen patients are assigned to, identified by a
// short clinical code ("A1", "M2", "F3", ...). The menu of the day for a
// food type is resolved by querying menus on (food_type_id, date) — there is
// no stored back-reference to keep in sync.
type FoodType struct {
	gorm.Model
	TypeName    string `gorm:"uniqueIndex;not null"` // e.g. "A1"
	Description string // e.g. "General diet"
	Menus       []Menu `json:"-"`
}
