package main

import (
	"log"

	"github.com/adilshaik/uga-nutrition-app/config"
	"github.com/adilshaik/uga-nutrition-app/routes"
	"github.com/adilshaik/uga-nutrition-app/services"
	"github.com/adilshaik/uga-nutrition-app/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	menuSvc := services.NewMenuService(services.DefaultMenuColumns())

	visionSvc, err := services.NewVisionService()
	if err != nil {
		log.Fatalf("vision service: %v", err)
	}

	agentSvc := services.NewAgentService()

	pushSvc, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service: %v", err)
	}

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub, pushSvc)

	r := routes.SetupRouter(menuSvc, visionSvc, agentSvc, pushSvc, hub)
	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
