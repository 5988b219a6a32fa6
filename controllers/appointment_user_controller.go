package controllers

import (
	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/gin-gonic/gin"
)

// UserSessions lists the authenticated user's appointments, newest first
func UserSessions(c *gin.Context) {
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

	query := config.DB.Model(&models.Appointment{}).Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		if !models.ValidAppointmentStatus(status) {
			utils.BadRequest(c, "Unknown status filter", nil)
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count sessions for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch sessions", nil)
		return
	}
	pagination.SetTotal(total)

	var appointments []models.Appointment
	if err := query.Order("date DESC, time_slot DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&appointments).Error; err != nil {
		utils.LogError("Failed to fetch sessions for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch sessions", nil)
		return
	}

	utils.SendPaginatedResponse(c, appointments, pagination)
}
