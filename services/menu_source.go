package services

import (
	"errors"
	"time"

	"github.com/ArnthorAtli/MatarPontun/config"
	"github.com/ArnthorAtli/MatarPontun/models"
	"github.com/ArnthorAtli/MatarPontun/utils"

	"gorm.io/gorm"
)

// MenuSource resolves the menu currently authoritative for a food type.
// The engine only ever reads menus through this interface, which keeps the
// reconciliation logic testable without a database.
type MenuSource interface {
	// MenuOfTheDay returns today's menu for the food type code, with all
	// five meal slots loaded, or nil when none is published.
	MenuOfTheDay(foodTypeCode string) *models.Menu
}

// dbMenuSource resolves menus from postgres by (food type code, today).
type dbMenuSource struct{}

func (dbMenuSource) MenuOfTheDay(foodTypeCode string) *models.Menu {
	menu, err := findMenu(foodTypeCode, utils.Today())
	if err != nil {
		return nil
	}
	return menu
}

func findMenu(foodTypeCode string, date time.Time) (*models.Menu, error) {
	var menu models.Menu
	err := config.DB.
		Joins("JOIN food_types ON food_types.id = menus.food_type_id").
		Where("food_types.type_name = ? AND menus.date = ?", foodTypeCode, date).
		Preload("FoodType").
		Preload("Breakfast").
		Preload("Lunch").
		Preload("AfternoonSnack").
		Preload("Dinner").
		Preload("NightSnack").
		First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &menu, nil
}
