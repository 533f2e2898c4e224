package services

import (
	"github.com/ArnthorAtli/MatarPontun/config"
	"github.com/ArnthorAtli/MatarPontun/models"
	"github.com/ArnthorAtli/MatarPontun/utils"

	"gorm.io/gorm"
)

type KitchenService struct {
	db *gorm.DB
}

func NewKitchenService() *KitchenService {
	return &KitchenService{db: config.DB}
}

// KitchenSummary counts today's meals ward → slot → food type, the shape
// kitchen staff plate trays from.
type KitchenSummary struct {
	Date        string                                   `json:"date"`
	Wards       map[string]map[string]map[string]int     `json:"wards"`
	TotalOrders int                                      `json:"total_orders"`
}

// TodaysSummary aggregates all of today's daily orders.
func (s *KitchenService) TodaysSummary() (*KitchenSummary, error) {
	today := utils.Today()

	var orders []models.DailyOrder
	err := s.db.
		Where("order_date = ?", today).
		Preload("Breakfast.FoodType").
		Preload("Lunch.FoodType").
		Preload("AfternoonSnack.FoodType").
		Preload("Dinner.FoodType").
		Preload("NightSnack.FoodType").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	summary := &KitchenSummary{
		Date:        today.Format("2006-01-02"),
		Wards:       make(map[string]map[string]map[string]int),
		TotalOrders: len(orders),
	}

	for _, order := range orders {
		wardName := order.WardName
		if wardName == "" {
			wardName = "Unassigned"
		}
		if summary.Wards[wardName] == nil {
			summary.Wards[wardName] = make(map[string]map[string]int)
		}
		ward := summary.Wards[wardName]

		for _, period := range utils.AllMealPeriods {
			addMealToSummary(ward, period.Category(), orderMeal(&order, period))
		}
	}
	return summary, nil
}

func addMealToSummary(ward map[string]map[string]int, category string, meal *models.Meal) {
	if meal == nil || meal.FoodType == nil {
		return
	}
	if ward[category] == nil {
		ward[category] = make(map[string]int)
	}
	ward[category][meal.FoodType.TypeName]++
}
