package controllers

import (
	"net/http"
	"time"

	"github.com/ArnthorAtli/MatarPontun/services"

	"github.com/gin-gonic/gin"
)

type CreateFoodTypeInput struct {
	TypeName    string `json:"type_name" binding:"required"`
	Description string `json:"description"`
}

func CreateFoodType(c *gin.Context) {
	var input CreateFoodTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	foodType, err := services.NewFoodTypeService().CreateFoodType(input.TypeName, input.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, foodType)
}

func ListFoodTypes(c *gin.Context) {
	foodTypes, err := services.NewFoodTypeService().ListFoodTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foodTypes)
}

type GenerateMenusInput struct {
	DaysInFuture int `json:"days_in_future"`
}

// GenerateMenus creates a menu for every food type for today+N, picking a
// random catalog meal per slot.
func GenerateMenus(c *gin.Context) {
	var input GenerateMenusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := services.NewMenuService().CreateMenusForFutureDay(input.DaysInFuture)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// GetMenu returns the menu for ?food_type= and optional ?date= (YYYY-MM-DD,
// defaults to today).
func GetMenu(c *gin.Context) {
	code := c.Query("food_type")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_type is required"})
		return
	}

	menuSvc := services.NewMenuService()
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
			return
		}
		menu, err := menuSvc.GetMenu(code, date)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, menu)
		return
	}

	menu, err := menuSvc.GetMenuOfTheDay(code)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}
