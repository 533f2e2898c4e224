package main

import (
	"github.com/ArnthorAtli/MatarPontun/config"
	"github.com/ArnthorAtli/MatarPontun/routes"
	"github.com/ArnthorAtli/MatarPontun/services"
)

func main() {
	config.InitDB()

	hub := services.NewKitchenHub()
	services.InitOrderEvents(hub)

	r := routes.SetupRouter(hub)
	r.Run(":8080")
}
