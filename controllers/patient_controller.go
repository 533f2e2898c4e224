package controllers

import (
	"net/http"

	"github.com/ArnthorAtli/MatarPontun/config"
	"github.com/ArnthorAtli/MatarPontun/models"
	"github.com/ArnthorAtli/MatarPontun/services"

	"github.com/gin-gonic/gin"
)

type CreatePatientInput struct {
	Name      string `json:"name" binding:"required"`
	Age       int    `json:"age"`
	BedNumber int    `json:"bed_number"`
	RoomID    *uint  `json:"room_id"`
	FoodType  string `json:"food_type"`
}

func CreatePatient(c *gin.Context) {
	var input CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient := models.Patient{
		Name:      input.Name,
		Age:       input.Age,
		BedNumber: input.BedNumber,
		RoomID:    input.RoomID,
	}
	if input.RoomID != nil {
		var room models.Room
		if err := config.DB.First(&room, *input.RoomID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		patient.WardID = &room.WardID
	}

	patientSvc := services.NewPatientService()
	if err := patientSvc.CreatePatient(&patient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if input.FoodType != "" {
		updated, err := patientSvc.AssignFoodType(patient.ID, input.FoodType)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, updated)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func GetPatient(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	patient, err := services.NewPatientService().GetPatient(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

type AssignFoodTypeInput struct {
	FoodType string `json:"food_type" binding:"required"`
}

// AssignFoodType changes the patient's diet. Any existing order for today is
// superseded: the old one is deleted and a fresh one built and reconciled
// from the new food type's menu of the day.
func AssignFoodType(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	var input AssignFoodTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patientSvc := services.NewPatientService()
	patient, err := patientSvc.AssignFoodType(id, input.FoodType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	orderSvc := services.NewDailyOrderService()
	if _, err := orderSvc.TodayOrderForPatient(id); err == nil {
		if _, err := orderSvc.OrderFoodTypeForPatient(id); err != nil {
			respondServiceError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, patient)
}

type TermInput struct {
	Term string `json:"term" binding:"required"`
}

type TermsInput struct {
	Terms []string `json:"terms" binding:"required"`
}

func AddRestriction(c *gin.Context) {
	mutateTerms(c, func(svc *services.PatientService, id uint, term string) (*models.Patient, error) {
		return svc.AddRestriction(id, term)
	})
}

func AddAllergy(c *gin.Context) {
	mutateTerms(c, func(svc *services.PatientService, id uint, term string) (*models.Patient, error) {
		return svc.AddAllergy(id, term)
	})
}

func mutateTerms(c *gin.Context, fn func(*services.PatientService, uint, string) (*models.Patient, error)) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	var input TermInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient, err := fn(services.NewPatientService(), id, input.Term)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func RemoveRestrictions(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	var input TermsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient, err := services.NewPatientService().RemoveRestrictions(id, input.Terms)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func ClearRestrictions(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	patient, err := services.NewPatientService().ClearRestrictions(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func RemoveAllergies(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	var input TermsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient, err := services.NewPatientService().RemoveAllergies(id, input.Terms)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func ClearAllergies(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	patient, err := services.NewPatientService().ClearAllergies(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// AddRestrictionAndReassign is the restriction flow with automatic diet
// reassignment: add the term, check the next scheduled meal, and switch the
// patient to a compatible food type when the current one conflicts.
func AddRestrictionAndReassign(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	var input TermInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := services.NewPatientService().AddRestrictionAndReassign(id, input.Term)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
