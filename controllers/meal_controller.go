package controllers

import (
	"net/http"

	"github.com/ArnthorAtli/MatarPontun/services"

	"github.com/gin-gonic/gin"
)

type CreateMealInput struct {
	Name        string `json:"name" binding:"required"`
	Ingredients string `json:"ingredients"`
	Category    string `json:"category" binding:"required"`
	FoodType    string `json:"food_type" binding:"required"`
}

func CreateMeal(c *gin.Context) {
	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := services.NewMealService().CreateMeal(input.Name, input.Ingredients, input.Category, input.FoodType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	meals, err := services.NewMealService().ListMeals(c.Query("food_type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func DeleteMeal(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	if err := services.NewMealService().DeleteMeal(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}
