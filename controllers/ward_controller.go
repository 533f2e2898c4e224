package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ArnthorAtli/MatarPontun/services"

	"github.com/gin-gonic/gin"
)

type CreateWardInput struct {
	WardName string `json:"ward_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func CreateWard(c *gin.Context) {
	var input CreateWardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wardSvc := services.NewWardService(services.NewDailyOrderService())
	ward, err := wardSvc.CreateWard(input.WardName, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateWard) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ward)
}

type SignInInput struct {
	WardName string `json:"ward_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func SignIn(c *gin.Context) {
	var input SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wardSvc := services.NewWardService(services.NewDailyOrderService())
	token, ward, err := wardSvc.SignIn(input.WardName, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid ward name or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "ward_id": ward.ID, "ward_name": ward.WardName})
}

func ListWards(c *gin.Context) {
	wardSvc := services.NewWardService(services.NewDailyOrderService())
	wards, err := wardSvc.ListWards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wards)
}

type UpdateWardInput struct {
	WardName string `json:"ward_name" binding:"required"`
	Password string `json:"password"`
}

func UpdateWard(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	var input UpdateWardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wardSvc := services.NewWardService(services.NewDailyOrderService())
	ward, err := wardSvc.UpdateWard(id, input.WardName, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ward)
}

func GetWardSummary(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	wardSvc := services.NewWardService(services.NewDailyOrderService())
	summary, err := wardSvc.GetWardSummary(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func DeleteWard(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	wardSvc := services.NewWardService(services.NewDailyOrderService())
	if err := wardSvc.DeleteWardCascade(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ward deleted"})
}

type CreateRoomInput struct {
	RoomNumber string `json:"room_number" binding:"required"`
}

func CreateRoom(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	var input CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wardSvc := services.NewWardService(services.NewDailyOrderService())
	room, err := wardSvc.CreateRoom(id, input.RoomNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func GenerateWardOrders(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	wardSvc := services.NewWardService(services.NewDailyOrderService())
	orders, err := wardSvc.GenerateDailyOrders(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetWardPatientOrder(c *gin.Context) {
	wardID, err := pathID(c, "id")
	if err != nil {
		return
	}
	patientID, err := pathID(c, "patientId")
	if err != nil {
		return
	}
	wardSvc := services.NewWardService(services.NewDailyOrderService())
	patient, order, err := wardSvc.GetPatientOrder(wardID, patientID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient, "order": order})
}

// pathID parses a numeric path parameter, responding 400 on failure.
func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, err
	}
	return uint(id), nil
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.IsPrecondition(err), errors.Is(err, services.ErrDuplicateWard):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
