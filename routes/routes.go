package routes

import (
	"github.com/ArnthorAtli/MatarPontun/controllers"
	"github.com/ArnthorAtli/MatarPontun/middlewares"
	"github.com/ArnthorAtli/MatarPontun/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.KitchenHub) *gin.Engine {
	r := gin.Default()

	// Public ward routes
	wards := r.Group("/wards")
	{
		wards.POST("", controllers.CreateWard)
		wards.POST("/signin", controllers.SignIn)
	}

	// Everything else requires a ward token
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/wards", controllers.ListWards)
		auth.PUT("/wards/:id", controllers.UpdateWard)
		auth.DELETE("/wards/:id", controllers.DeleteWard)
		auth.GET("/wards/:id/summary", controllers.GetWardSummary)
		auth.POST("/wards/:id/rooms", controllers.CreateRoom)
		auth.POST("/wards/:id/orders", controllers.GenerateWardOrders)
		auth.GET("/wards/:id/patients/:patientId", controllers.GetWardPatientOrder)

		auth.POST("/patients", controllers.CreatePatient)
		auth.GET("/patients/:id", controllers.GetPatient)
		auth.PUT("/patients/:id/foodtype", controllers.AssignFoodType)
		auth.POST("/patients/:id/restrictions", controllers.AddRestriction)
		auth.DELETE("/patients/:id/restrictions", controllers.RemoveRestrictions)
		auth.DELETE("/patients/:id/restrictions/all", controllers.ClearRestrictions)
		auth.POST("/patients/:id/restrictions/reassign", controllers.AddRestrictionAndReassign)
		auth.POST("/patients/:id/allergies", controllers.AddAllergy)
		auth.DELETE("/patients/:id/allergies", controllers.RemoveAllergies)
		auth.DELETE("/patients/:id/allergies/all", controllers.ClearAllergies)

		auth.POST("/patients/:id/order", controllers.CreateOrder)
		auth.GET("/patients/:id/order", controllers.GetTodaysOrder)
		auth.POST("/patients/:id/order/check", controllers.CheckOrderConflicts)
		auth.DELETE("/patients/:id/order", controllers.DeleteTodaysOrder)
		auth.GET("/orders", controllers.ListOrders)

		auth.POST("/foodtypes", controllers.CreateFoodType)
		auth.GET("/foodtypes", controllers.ListFoodTypes)
		auth.POST("/menus/generate", controllers.GenerateMenus)
		auth.GET("/menus", controllers.GetMenu)
		auth.POST("/meals", controllers.CreateMeal)
		auth.GET("/meals", controllers.ListMeals)
		auth.DELETE("/meals/:id", controllers.DeleteMeal)

		auth.GET("/kitchen/summary", controllers.KitchenSummary)
	}

	// Kitchen live feed (websocket clients authenticate via query token is
	// out of scope; dashboards sit on the internal network)
	rt := controllers.NewRealtimeController(hub)
	r.GET("/kitchen/live", rt.OrdersWS)

	return r
}
