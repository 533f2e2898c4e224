package controllers

import (
	"net/http"

	"github.com/ArnthorAtli/MatarPontun/services"

	"github.com/gin-gonic/gin"
)

// KitchenSummary returns today's meal counts ward → slot → food type.
func KitchenSummary(c *gin.Context) {
	summary, err := services.NewKitchenService().TodaysSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
