package routes

import (
	"net/http"
	"time"

	"ayursutra/handlers"
	"ayursutra/middleware"
	"ayursutra/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.MeHandler)
		api.GET("/practitioners", hb.ListPractitionersHandler)
	}
}

// RegisterTherapyRoutes registers therapy catalog endpoints.
func RegisterTherapyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/therapies")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListTherapiesHandler)
		api.GET("/:id", hb.GetTherapyHandler)
		api.POST("", middleware.RequireRole(models.RolePractitioner), hb.CreateTherapyHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking scheduler.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateBookingHandler)
		api.GET("/mine", hb.MyBookingsHandler)
		api.GET("/practitioner", middleware.RequireRole(models.RolePractitioner), hb.PractitionerBookingsHandler)

		// Reschedule sweep, on demand.
		api.POST("/reschedule", hb.RescheduleAllHandler)
		api.POST("/:id/reschedule", hb.RescheduleOneHandler)

		// Session progress, practitioner only.
		sessions := api.Group("/:id/sessions")
		sessions.Use(middleware.RequireRole(models.RolePractitioner))
		sessions.POST("/:index/complete", hb.CompleteSessionHandler)
		sessions.POST("/:index/missed", hb.MissSessionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm AyurSutra"})
	})
}

// RegisterRoutes wires CORS plus every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterTherapyRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
