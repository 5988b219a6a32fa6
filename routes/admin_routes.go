package routes

import (
	"github.com/Meghana-710/CalmSpace/controllers"
	"github.com/Meghana-710/CalmSpace/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		// Schedule management
		admin.PUT("/availability", controllers.SetAvailability)
		admin.DELETE("/availability/:id", controllers.DeleteAvailability)
		admin.POST("/availability/flush", controllers.FlushPastAvailability)

		// Appointment workflow
		admin.GET("/appointments/pending", controllers.PendingAppointments)
		admin.PATCH("/appointments/:id/status", controllers.UpdateAppointmentStatus)

		// Wallet approval workflow
		admin.GET("/wallet/topups/pending", controllers.PendingTopups)
		admin.PATCH("/wallet/topups/:id", controllers.ResolveWalletTopup)
		admin.GET("/wallet/transactions/export", controllers.DownloadLedgerStatement)
	}
}
