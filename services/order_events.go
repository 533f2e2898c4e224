package services

import (
	"github.com/ArnthorAtli/MatarPontun/models"
)

var _orderHub *KitchenHub

// InitOrderEvents wires the kitchen hub used for order broadcasts.
func InitOrderEvents(hub *KitchenHub) {
	_orderHub = hub
}

// EmitOrderEvent publishes an order's current state to the kitchen feed.
// Safe to call before InitOrderEvents (e.g. from tests).
func EmitOrderEvent(order *models.DailyOrder, patientName string) {
	if _orderHub == nil {
		return
	}
	_orderHub.Broadcast(map[string]any{
		"kind":        "order.updated",
		"order_id":    order.ID,
		"order_date":  order.OrderDate.Format("2006-01-02"),
		"patient":     patientName,
		"ward_name":   order.WardName,
		"room_number": order.RoomNumber,
		"status":      order.Status,
	})
}
