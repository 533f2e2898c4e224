package services

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/ArnthorAtli/MatarPontun/config"
	"github.com/ArnthorAtli/MatarPontun/models"
	"github.com/ArnthorAtli/MatarPontun/utils"

	"gorm.io/gorm"
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService() *MenuService {
	return &MenuService{db: config.DB}
}

// CreateMenusForFutureDay builds one menu per food type for today plus
// daysInFuture, picking a random meal per slot from that food type's
// catalog. Food types that already have a menu for the date are skipped, as
// are slots with no meals in the catalog. Returns the number of menus
// created.
func (s *MenuService) CreateMenusForFutureDay(daysInFuture int) (int, error) {
	targetDate := utils.Today().AddDate(0, 0, daysInFuture)

	var foodTypes []models.FoodType
	if err := s.db.Find(&foodTypes).Error; err != nil {
		return 0, err
	}
	if len(foodTypes) == 0 {
		return 0, errors.New("no food types in the database")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0

	for _, foodType := range foodTypes {
		var existing models.Menu
		err := s.db.Where("food_type_id = ? AND date = ?", foodType.ID, targetDate).First(&existing).Error
		if err == nil {
			log.Printf("Skipping existing menu for %s on %s", foodType.TypeName, targetDate.Format("2006-01-02"))
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		menu := models.Menu{Date: targetDate, FoodTypeID: foodType.ID}
		menu.BreakfastID = s.randomMealID(foodType.ID, utils.Breakfast, rng)
		menu.LunchID = s.randomMealID(foodType.ID, utils.Lunch, rng)
		menu.AfternoonSnackID = s.randomMealID(foodType.ID, utils.AfternoonSnack, rng)
		menu.DinnerID = s.randomMealID(foodType.ID, utils.Dinner, rng)
		menu.NightSnackID = s.randomMealID(foodType.ID, utils.NightSnack, rng)

		if err := s.db.Create(&menu).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *MenuService) randomMealID(foodTypeID uint, period utils.MealPeriod, rng *rand.Rand) *uint {
	var meals []models.Meal
	err := s.db.
		Where("food_type_id = ? AND LOWER(category) = LOWER(?)", foodTypeID, period.Category()).
		Find(&meals).Error
	if err != nil || len(meals) == 0 {
		return nil
	}
	id := meals[rng.Intn(len(meals))].ID
	return &id
}

// GetMenu returns the menu for a food type code on a date, slots loaded.
func (s *MenuService) GetMenu(foodTypeCode string, date time.Time) (*models.Menu, error) {
	return findMenu(foodTypeCode, date)
}

// GetMenuOfTheDay returns today's menu for a food type code.
func (s *MenuService) GetMenuOfTheDay(foodTypeCode string) (*models.Menu, error) {
	return findMenu(foodTypeCode, utils.Today())
}
