package controllers

import (
	"net/http"
	"time"

	"github.com/ArnthorAtli/MatarPontun/services"

	"github.com/gin-gonic/gin"
)

// CreateOrder builds (or supersedes) today's order for a patient from the
// menu of the day of their assigned food type and reconciles it against
// their restrictions and allergies.
func CreateOrder(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	order, err := services.NewDailyOrderService().OrderFoodTypeForPatient(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func GetTodaysOrder(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	order, err := services.NewDailyOrderService().TodayOrderForPatient(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CheckOrderConflicts re-runs reconciliation on today's order, typically
// after the patient's restrictions changed.
func CheckOrderConflicts(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	order, err := services.NewDailyOrderService().CheckConflicts(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func DeleteTodaysOrder(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	deleted, err := services.NewDailyOrderService().DeleteTodaysOrder(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "no order for today"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}

// ListOrders filters order summaries by ward, date (YYYY-MM-DD), food type
// code, and status via query parameters.
func ListOrders(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	orders, err := services.NewDailyOrderService().ListOrders(
		c.Query("ward"), date, c.Query("food_type"), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
