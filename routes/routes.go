package routes

import (
	"net/http"
	"time"

	"petalflow/handlers"
	"petalflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers routes are registered against.
type HandlerBundle struct {
	Onboarding *handlers.OnboardingHandler
	Vendor     *handlers.VendorHandler
	Event      *handlers.EventHandler
}

// RegisterVendorRoutes registers vendor resolution and catalog endpoints.
func RegisterVendorRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/vendors")
	{
		api.GET("/slug/:slug", hb.Vendor.GetVendorBySlugHandler)
		api.GET("/:id/event-types", hb.Vendor.GetEventTypesHandler)

		catalog := api.Group("/:id/catalog")
		catalog.GET("/arrangements", hb.Vendor.GetArrangementsHandler)
		catalog.GET("/arrangement-types", hb.Vendor.GetArrangementTypesHandler)
		catalog.GET("/colors", hb.Vendor.GetColorsHandler)
		catalog.GET("/flowers", hb.Vendor.GetFlowersHandler)
	}
}

// RegisterOnboardingRoutes registers the wizard session engine endpoints.
func RegisterOnboardingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/onboarding")
	{
		api.POST("/sessions", hb.Onboarding.MountSessionHandler)
		api.POST("/sessions/resume", hb.Onboarding.ResumeSessionHandler)

		session := api.Group("/sessions/:sessionID")
		session.GET("", hb.Onboarding.GetSessionHandler)
		session.PATCH("", hb.Onboarding.UpdateSessionHandler)
		session.POST("/next", hb.Onboarding.NextStepHandler)
		session.POST("/previous", hb.Onboarding.PrevStepHandler)
		session.POST("/goto", hb.Onboarding.GoToStepHandler)
		session.POST("/inquiry", hb.Onboarding.CreateInquiryHandler)
		session.POST("/confirmation", hb.Onboarding.AcknowledgeConfirmationHandler)
		session.POST("/submit", hb.Onboarding.SubmitHandler)
		session.POST("/reset", hb.Onboarding.ResetHandler)

		session.PUT("/colors", hb.Onboarding.SaveColorsHandler)
		session.PATCH("/arrangements", hb.Onboarding.SaveArrangementsHandler)
		session.GET("/save-status", hb.Onboarding.SaveStatusHandler)
	}
}

// RegisterEventRoutes registers persisted-event reads and inspirations.
func RegisterEventRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/events/:eventID")
	{
		api.GET("/snapshot", hb.Event.GetSnapshotHandler)
		api.GET("/colors", hb.Event.GetColorsHandler)
		api.GET("/arrangements", hb.Event.GetArrangementsHandler)

		api.GET("/inspirations", hb.Event.ListInspirationsHandler)
		api.POST("/inspirations", hb.Event.AddInspirationHandler)
		api.DELETE("/inspirations/:inspirationID", hb.Event.DeleteInspirationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Petalflow",
			"health":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterVendorRoutes(r, hb)
	RegisterOnboardingRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterHealthRoute(r)
}
