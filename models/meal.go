package models

import "gorm.io/gorm"

// Meal is a catalog entry owned by one food type. Ingredients is free text
// ("oats, water, salt") searched by substring during conflict checks.
// Category names the meal slot this dish is served in (see utils.MealPeriod).
type Meal struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Ingredients string
	Category    string // "Breakfast"|"Lunch"|"AfternoonSnack"|"Dinner"|"NightSnack"

	FoodTypeID uint
	FoodType   *FoodType `json:"-"`
}
