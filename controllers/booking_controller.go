package controllers

import (
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/gin-gonic/gin"
)

// ReserveSlot books one slot for the authenticated user. The created
// appointment starts in pending and waits for admin confirmation.
func ReserveSlot(c *gin.Context) {
	utils.LogInfo("ReserveSlot called")

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
		Date        string `json:"date" binding:"required"`
		TimeSlot    string `json:"time_slot" binding:"required"`
		TherapyType string `json:"therapy_type" binding:"required"`
		SessionType string `json:"session_type" binding:"required"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid booking payload for user ID %d: %v", user.ID, err)
		utils.BadRequest(c, "Date, time slot, therapy type and session type are required", err.Error())
		return
	}
	utils.LogDebug("Booking request - User ID: %d, Date: %s, Slot: %s", user.ID, req.Date, req.TimeSlot)

	appointment, err := reserveSlot(user.ID, req.Date, req.TimeSlot, req.TherapyType, req.SessionType, req.Notes)
	if err != nil {
		handleCoreError(c, err)
		return
	}

	utils.LogInfo("User %d reserved %s %s as appointment %d", user.ID, req.Date, req.TimeSlot, appointment.ID)
	utils.Created(c, "Slot reserved, awaiting confirmation", gin.H{
		"appointment": appointment,
	})
}
