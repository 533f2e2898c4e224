package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyOrder statuses. NeedsManualChange wins over AutoChanged when both
// occur in one reconciliation pass.
const (
	OrderSubmitted         = "SUBMITTED"
	OrderAutoChanged       = "AUTO_CHANGED"
	OrderNeedsManualChange = "NEEDS_MANUAL_CHANGE"
)

// DailyOrder is the one order a patient has per date: a snapshot of five
// meal references taken from the menu of the day of the patient's food type.
// Reconciliation may swap individual meals and move the status, but never
// the patient or the date. Changing a patient's food type supersedes the
// order (delete + recreate).
type DailyOrder struct {
	gorm.Model
	OrderDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_order_patient_date"`
	Status    string    `gorm:"not null;default:SUBMITTED"`

	PatientID uint     `gorm:"not null;uniqueIndex:idx_order_patient_date"`
	Patient   *Patient `json:"-"`

	FoodTypeID *uint
	FoodType   *FoodType

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

	// denormalized for kitchen grouping
	WardName   string
	RoomNumber string
}
