package services

import (
	"errors"
	"time"

	"github.com/ArnthorAtli/MatarPontun/config"
	"github.com/ArnthorAtli/MatarPontun/models"
	"github.com/ArnthorAtli/MatarPontun/utils"

	"gorm.io/gorm"
)

type PatientService struct {
	db     *gorm.DB
	groups DietGroupTable
	menus  MenuSource
}

func NewPatientService() *PatientService {
	return &PatientService{
		db:     config.DB,
		groups: DefaultDietGroups,
		menus:  dbMenuSource{},
	}
}

// RestrictionCheckResult reports what adding a restriction did to the
// patient's diet: whether a food type reassignment happened, which food type
// the patient ends up on, and the meal now scheduled for the current slot.
type RestrictionCheckResult struct {
	Message         string `json:"message"`
	Reassigned      bool   `json:"reassigned"`
	ManualReview    bool   `json:"manual_review"`
	FoodType        string `json:"food_type"`
	MealName        string `json:"meal_name"`
	MealIngredients string `json:"meal_ingredients"`
}

// AddRestrictionAndReassign adds a restriction term and checks whether the
// patient's next scheduled meal is still suitable. On conflict it searches
// the patient's equivalence group for a food type whose menu of the day
// offers a safe meal in the current slot and reassigns the patient to it.
// The restriction is saved in every case; only the outcome differs.
func (s *PatientService) AddRestrictionAndReassign(patientID uint, restriction string) (*RestrictionCheckResult, error) {
	patient, err := s.findPatient(patientID)
	if err != nil {
		return nil, err
	}
	patient.AddRestriction(restriction)

	period := utils.CurrentMealPeriod(time.Now())

	var nextMeal *models.Meal
	currentCode := ""
	if patient.FoodType != nil {
		currentCode = patient.FoodType.TypeName
		nextMeal = period.MealFromMenu(s.menus.MenuOfTheDay(currentCode))
	}

	terms := ConflictTerms(patient)

	if nextMeal == nil || !HasConflict(nextMeal, terms) {
		if err := s.db.Save(patient).Error; err != nil {
			return nil, err
		}
		result := &RestrictionCheckResult{
			Message:  "Restriction added. The patient's next meal is still suitable.",
			FoodType: currentCode,
		}
		if nextMeal != nil {
			result.MealName = nextMeal.Name
			result.MealIngredients = nextMeal.Ingredients
		}
		return result, nil
	}

	if code, meal := s.reassignCandidate(currentCode, period, terms); meal != nil {
		var foodType models.FoodType
		if err := s.db.Where("type_name = ?", code).First(&foodType).Error; err != nil {
			return nil, err
		}
		patient.FoodTypeID = &foodType.ID
		patient.FoodType = &foodType
		if err := s.db.Save(patient).Error; err != nil {
			return nil, err
		}
		return &RestrictionCheckResult{
			Message:         "Conflict detected. Patient reassigned to a compatible food type.",
			Reassigned:      true,
			FoodType:        code,
			MealName:        meal.Name,
			MealIngredients: meal.Ingredients,
		}, nil
	}

	if err := s.db.Save(patient).Error; err != nil {
		return nil, err
	}
	return &RestrictionCheckResult{
		Message:         "Restriction added, but no suitable alternative food type exists. Manual review required.",
		ManualReview:    true,
		FoodType:        currentCode,
		MealName:        nextMeal.Name,
		MealIngredients: nextMeal.Ingredients,
	}, nil
}

// reassignCandidate searches the equivalence group of currentCode for a food
// type whose menu of the day carries a conflict-free meal in the given slot.
// Returns the first such code with its meal, or ("", nil).
func (s *PatientService) reassignCandidate(currentCode string, period utils.MealPeriod, terms []string) (string, *models.Meal) {
	for _, code := range s.groups.GroupFor(currentCode) {
		menu := s.menus.MenuOfTheDay(code)
		candidate := period.MealFromMenu(menu)
		if candidate == nil || candidate.Ingredients == "" {
			continue
		}
		if !HasConflict(candidate, terms) {
			return code, candidate
		}
	}
	return "", nil
}

func (s *PatientService) CreatePatient(patient *models.Patient) error {
	return s.db.Create(patient).Error
}

func (s *PatientService) GetPatient(patientID uint) (*models.Patient, error) {
	return s.findPatient(patientID)
}

func (s *PatientService) AssignFoodType(patientID uint, foodTypeCode string) (*models.Patient, error) {
	patient, err := s.findPatient(patientID)
	if err != nil {
		return nil, err
	}
	var foodType models.FoodType
	if err := s.db.Where("type_name = ?", foodTypeCode).First(&foodType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	patient.FoodTypeID = &foodType.ID
	patient.FoodType = &foodType
	if err := s.db.Save(patient).Error; err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) AddRestriction(patientID uint, term string) (*models.Patient, error) {
	return s.mutate(patientID, func(p *models.Patient) { p.AddRestriction(term) })
}

func (s *PatientService) RemoveRestrictions(patientID uint, terms []string) (*models.Patient, error) {
	return s.mutate(patientID, func(p *models.Patient) { p.RemoveRestrictions(terms) })
}

func (s *PatientService) ClearRestrictions(patientID uint) (*models.Patient, error) {
	return s.mutate(patientID, func(p *models.Patient) { p.Restrictions = "" })
}

func (s *PatientService) AddAllergy(patientID uint, term string) (*models.Patient, error) {
	return s.mutate(patientID, func(p *models.Patient) { p.AddAllergy(term) })
}

func (s *PatientService) RemoveAllergies(patientID uint, terms []string) (*models.Patient, error) {
	return s.mutate(patientID, func(p *models.Patient) { p.RemoveAllergies(terms) })
}

func (s *PatientService) ClearAllergies(patientID uint) (*models.Patient, error) {
	return s.mutate(patientID, func(p *models.Patient) { p.Allergies = "" })
}

func (s *PatientService) mutate(patientID uint, fn func(*models.Patient)) (*models.Patient, error) {
	patient, err := s.findPatient(patientID)
	if err != nil {
		return nil, err
	}
	fn(patient)
	if err := s.db.Save(patient).Error; err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) findPatient(patientID uint) (*models.Patient, error) {
	var patient models.Patient
	err := s.db.
		Preload("FoodType").
		Preload("Ward").
		Preload("Room").
		First(&patient, patientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}
