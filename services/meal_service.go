package services

import (
	"errors"

	"github.com/ArnthorAtli/MatarPontun/config"
	"github.com/ArnthorAtli/MatarPontun/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService() *MealService {
	return &MealService{db: config.DB}
}

// CreateMeal adds a catalog meal under the given food type code.
func (s *MealService) CreateMeal(name, ingredients, category, foodTypeCode string) (*models.Meal, error) {
	var foodType models.FoodType
	if err := s.db.Where("type_name = ?", foodTypeCode).First(&foodType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	meal := &models.Meal{
		Name:        name,
		Ingredients: ingredients,
		Category:    category,
		FoodTypeID:  foodType.ID,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) ListMeals(foodTypeCode string) ([]models.Meal, error) {
	q := s.db.Model(&models.Meal{})
	if foodTypeCode != "" {
		q = q.Joins("JOIN food_types ON food_types.id = meals.food_type_id").
			Where("food_types.type_name = ?", foodTypeCode)
	}
	var meals []models.Meal
	err := q.Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(mealID uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) DeleteMeal(mealID uint) error {
	res := s.db.Delete(&models.Meal{}, mealID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
