package controllers

import (
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/gin-gonic/gin"
)

// RequestWalletTopup records a manual bank-transfer top-up as a pending
// credit. The money becomes spendable only after an admin verifies the bank
// reference and approves the transaction.
func RequestWalletTopup(c *gin.Context) {
	utils.LogInfo("RequestWalletTopup called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	var req struct {
		Amount          int64  `json:"amount" binding:"required"`
		BankReferenceID string `json:"bank_reference_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid topup payload for user ID %d: %v", user.ID, err)
		utils.BadRequest(c, "Amount and bank reference are required", err.Error())
		return
	}
	utils.LogDebug("Topup request - User ID: %d, Amount: %d, Reference: %s", user.ID, req.Amount, req.BankReferenceID)

	transaction, err := requestTopup(user.ID, req.Amount, req.BankReferenceID)
	if err != nil {
		handleCoreError(c, err)
		return
	}

	utils.LogInfo("User %d requested topup of %d as transaction %d", user.ID, req.Amount, transaction.ID)
	utils.Created(c, "Topup request recorded, awaiting verification", gin.H{
		"transaction": transaction,
	})
}

// ChargeForSession debits the authenticated user's wallet for a booked
// session. Invoked by the booking flow once the session fee is known.
func ChargeForSession(c *gin.Context) {
	utils.LogInfo("ChargeForSession called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	var req struct {
		AppointmentID uint  `json:"appointment_id" binding:"required"`
		Amount        int64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid charge payload for user ID %d: %v", user.ID, err)
		utils.BadRequest(c, "Appointment ID and amount are required", err.Error())
		return
	}

	transaction, err := chargeForSession(user.ID, req.AppointmentID, req.Amount)
	if err != nil {
		handleCoreError(c, err)
		return
	}

	balance, err := walletBalance(user.ID)
	if err != nil {
		utils.LogError("Failed to derive balance for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get wallet balance", nil)
		return
	}

	utils.LogInfo("Charged user %d amount %d for appointment %d", user.ID, req.Amount, req.AppointmentID)
	utils.Success(c, "Session charged successfully", gin.H{
		"transaction": transaction,
		"balance":     balance,
	})
}
