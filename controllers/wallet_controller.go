package controllers

import (
	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/gin-gonic/gin"
)

// GetWalletBalance returns the user's spendable balance, derived from the
// transaction history rather than read off a counter.
func GetWalletBalance(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	balance, err := walletBalance(user.ID)
	if err != nil {
		utils.LogError("Failed to derive balance for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get wallet balance", nil)
		return
	}

	utils.Success(c, "Wallet balance retrieved successfully", gin.H{
		"balance": balance,
	})
}

// GetWalletTransactions returns the user's ledger history, newest first
func GetWalletTransactions(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.WalletTransaction{}).
		Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		utils.LogError("Failed to count transactions for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch transactions", nil)
		return
	}
	pagination.SetTotal(total)

	var transactions []models.WalletTransaction
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch transactions", nil)
		return
	}

	utils.SendPaginatedResponse(c, transactions, pagination)
}
