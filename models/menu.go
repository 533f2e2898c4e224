package models

import (
	"time"

	"gorm.io/gorm"
)

// Menu assigns one meal per slot to a food type for a single day.
// A food type has at most one menu per date.
type Menu struct {
	gorm.Model
	Date time.Time `gorm:"type:date;not null;uniqueIndex:idx_menu_food_type_date"`

	FoodTypeID uint      `gorm:"not null;uniqueIndex:idx_menu_food_type_date"`
	FoodType   *FoodType `json:"-"`

	BreakfastID      *uint
	Breakfast        *Meal `gorm:"foreignKey:BreakfastID"`
	LunchID          *uint
	Lunch            *Meal `gorm:"foreignKey:LunchID"`
	AfternoonSnackID *uint
	AfternoonSnack   *Meal `gorm:"foreignKey:AfternoonSnackID"`
	DinnerID         *uint
	Dinner           *Meal `gorm:"foreignKey:DinnerID"`
	NightSnackID     *uint
	NightSnack       *Meal `gorm:"foreignKey:NightSnackID"`
}
