package utils

import (
	"time"

	"github.com/ArnthorAtli/MatarPontun/models"
)

// MealPeriod is one of the five meal slots of a ward day. Each slot owns a
// half-open time interval; together they cover the full 24 hours with no
// gaps and no overlaps:
//
//	Breakfast      [00:00, 10:00)
//	Lunch          [10:00, 13:00)
//	AfternoonSnack [13:00, 17:00)
//	Dinner         [17:00, 21:00)
//	NightSnack     [21:00, 24:00)
type MealPeriod int

const (
	Breakfast MealPeriod = iota
	Lunch
	AfternoonSnack
	Dinner
	NightSnack
)

// AllMealPeriods lists the slots in serving order.
var AllMealPeriods = []MealPeriod{Breakfast, Lunch, AfternoonSnack, Dinner, NightSnack}

var periodStart = map[MealPeriod]int{ // minutes since midnight
	Breakfast:      0,
	Lunch:          10 * 60,
	AfternoonSnack: 13 * 60,
	Dinner:         17 * 60,
	NightSnack:     21 * 60,
}

var periodEnd = map[MealPeriod]int{
	Breakfast:      10 * 60,
	Lunch:          13 * 60,
	AfternoonSnack: 17 * 60,
	Dinner:         21 * 60,
	NightSnack:     24 * 60,
}

// CurrentMealPeriod maps a timestamp (time of day only) to its slot. Total:
// the intervals partition the day, and any timestamp that somehow misses
// them falls back to Breakfast.
func CurrentMealPeriod(t time.Time) MealPeriod {
	minutes := t.Hour()*60 + t.Minute()
	for _, p := range AllMealPeriods {
		if minutes >= periodStart[p] && minutes < periodEnd[p] {
			return p
		}
	}
	return Breakfast
}

// Category returns the slot name as stored on models.Meal.Category.
func (p MealPeriod) Category() string {
	switch p {
	case Breakfast:
		return "Breakfast"
	case Lunch:
		return "Lunch"
	case AfternoonSnack:
		return "AfternoonSnack"
	case Dinner:
		return "Dinner"
	case NightSnack:
		return "NightSnack"
	}
	return "Breakfast"
}

// MealFromMenu returns the meal a menu binds to this slot, which may be nil.
func (p MealPeriod) MealFromMenu(menu *models.Menu) *models.Meal {
	if menu == nil {
		return nil
	}
	switch p {
	case Breakfast:
		return menu.Breakfast
	case Lunch:
		return menu.Lunch
	case AfternoonSnack:
		return menu.AfternoonSnack
	case Dinner:
		return menu.Dinner
	case NightSnack:
		return menu.NightSnack
	}
	return nil
}

// Today returns the current date truncated to midnight UTC, the canonical
// form for menu and order date columns.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
