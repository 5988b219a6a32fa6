package controllers

import (
	"strconv"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/gin-gonic/gin"
)

// PendingTopups lists credit transactions awaiting admin verification
func PendingTopups(c *gin.Context) {
	utils.LogInfo("PendingTopups called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.WalletTransaction{}).
		Where("type = ? AND status = ?", models.TransactionTypeCredit, models.TransactionStatusPending)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count pending topups: %v", err)
		utils.InternalServerError(c, "Failed to fetch pending topups", nil)
		return
	}
	pagination.SetTotal(total)

	var transactions []models.WalletTransaction
	if err := query.Order("created_at ASC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch pending topups: %v", err)
		utils.InternalServerError(c, "Failed to fetch pending topups", nil)
		return
	}

	utils.SendPaginatedResponse(c, transactions, pagination)
}

// ResolveWalletTopup settles a pending top-up. Approval credits the user's
// balance; rejection leaves it untouched. Either way the decision is final
// and a second resolution attempt is refused.
func ResolveWalletTopup(c *gin.Context) {
	utils.LogInfo("ResolveWalletTopup called")

	admin, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found in context")
		return
	}
	adminModel, ok := admin.(models.Admin)
	if !ok {
		utils.LogError("Invalid admin type in context")
		utils.InternalServerError(c, "Invalid admin type", nil)
		return
	}

	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid transaction ID: %v", err)
		utils.BadRequest(c, "Invalid transaction ID", nil)
		return
	}

	var req struct {
		Decision string `json:"decision" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid resolution payload: %v", err)
		utils.BadRequest(c, "Decision is required", nil)
		return
	}

	transaction, err := resolveTopup(uint(transactionID), req.Decision)
	if err != nil {
		handleCoreError(c, err)
		return
	}

	utils.LogInfo("Topup %d resolved as %s by %s", transaction.ID, transaction.Status, adminModel.Email)
	utils.Success(c, "Topup resolved successfully", gin.H{
		"transaction": transaction,
	})
}
