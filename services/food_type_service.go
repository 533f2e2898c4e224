package services

import (
	"errors"

	"github.com/ArnthorAtli/MatarPontun/config"
	"github.com/ArnthorAtli/MatarPontun/models"

	"gorm.io/gorm"
)

type FoodTypeService struct {
	db *gorm.DB
}

func NewFoodTypeService() *FoodTypeService {
	return &FoodTypeService{db: config.DB}
}

func (s *FoodTypeService) CreateFoodType(typeName, description string) (*models.FoodType, error) {
	foodType := &models.FoodType{TypeName: typeName, Description: description}
	if err := s.db.Create(foodType).Error; err != nil {
		return nil, err
	}
	return foodType, nil
}

func (s *FoodTypeService) ListFoodTypes() ([]models.FoodType, error) {
	var foodTypes []models.FoodType
	err := s.db.Order("type_name").Find(&foodTypes).Error
	return foodTypes, err
}

func (s *FoodTypeService) GetFoodType(id uint) (*models.FoodType, error) {
	var foodType models.FoodType
	if err := s.db.First(&foodType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &foodType, nil
}
