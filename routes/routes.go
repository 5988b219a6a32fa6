package routes

import (
	"github.com/Meghana-710/CalmSpace/controllers"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	// API version group
	api := router.Group("/v1")
	{
		// Availability browsing is public; the booking UI shows the open
		// slots before the user logs in.
		api.GET("/availability", controllers.GetAvailability)

		initUserRoutes(api)
		initAdminRoutes(api)
	}

	return router
}
