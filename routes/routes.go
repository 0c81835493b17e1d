package routes

import (
	"github.com/adilshaik/uga-nutrition-app/controllers"
	"github.com/adilshaik/uga-nutrition-app/middlewares"
	"github.com/adilshaik/uga-nutrition-app/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	menuSvc *services.MenuService,
	visionSvc *services.VisionService,
	agentSvc *services.AgentService,
	pushSvc *services.PushService,
	hub *services.RealtimeHub,
) *gin.Engine {
	r := gin.Default()

	menuCtl := controllers.NewMenuController(menuSvc)
	scanCtl := controllers.NewScanController(visionSvc)
	chatCtl := controllers.NewChatController(agentSvc)
	deviceCtl := controllers.NewDeviceController(pushSvc)
	devCtl := controllers.NewDevController(pushSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything below requires a valid token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())

	user := api.Group("/user")
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	menu := api.Group("/menu")
	{
		menu.GET("", menuCtl.List)
		menu.GET("/halls", menuCtl.ListHalls)
		menu.POST("/reload", menuCtl.Reload)
	}

	log := api.Group("/log")
	{
		log.POST("", controllers.AddLogEntry)
		log.GET("", controllers.ListLog)
		log.PATCH("/:id/servings", controllers.UpdateLogServings)
		log.DELETE("/:id", controllers.DeleteLogEntry)
		log.DELETE("", controllers.ClearLog)
		log.GET("/totals", controllers.LogTotals)
		log.GET("/export", controllers.ExportLog)
	}

	targets := api.Group("/targets")
	{
		targets.POST("/compute", controllers.ComputeTargets)
		targets.GET("", controllers.GetTargets)
		targets.PUT("", controllers.UpdateTargets)
		targets.PUT("/day-type", controllers.SetDayType)
		targets.GET("/ranges", controllers.GetTargetRanges)
	}

	progress := api.Group("/progress")
	{
		progress.GET("", controllers.GetProgress)
		progress.GET("/history", controllers.GetProgressHistory)
		progress.GET("/summary", controllers.GetProgressSummary)
	}

	scan := api.Group("/scan")
	{
		scan.POST("", scanCtl.Scan)
		scan.POST("/confirm", scanCtl.Confirm)
		scan.GET("/portions", scanCtl.Portions)
	}

	api.POST("/chat", chatCtl.Chat)

	session := api.Group("/session")
	{
		session.GET("/export", controllers.ExportSession)
		session.POST("/import", controllers.ImportSession)
	}

	api.POST("/devices", deviceCtl.Register)
	api.GET("/alerts", controllers.ListAlerts)
	api.GET("/ws", rtCtl.EventsWS)

	dev := api.Group("/dev")
	{
		dev.POST("/push-test", devCtl.PushTest)
	}

	return r
}
