package routes

import (
	"github.com/Meghana-710/CalmSpace/controllers"
	"github.com/Meghana-710/CalmSpace/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all user-related routes
func initUserRoutes(router *gin.RouterGroup) {
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		// Booking
		protected.POST("/appointments", controllers.ReserveSlot)
		protected.GET("/appointments", controllers.UserSessions)
		protected.GET("/appointments/:id/receipt", controllers.DownloadSessionReceipt)

		// Wallet
		protected.GET("/wallet", controllers.GetWalletBalance)
		protected.GET("/wallet/transactions", controllers.GetWalletTransactions)
		protected.POST("/wallet/topup", controllers.RequestWalletTopup)
		protected.POST("/wallet/charge", controllers.ChargeForSession)
	}
}
