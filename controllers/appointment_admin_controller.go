package controllers

import (
	"strconv"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/gin-gonic/gin"
)

// PendingAppointments lists appointments awaiting an admin decision
func PendingAppointments(c *gin.Context) {
	utils.LogInfo("PendingAppointments called")

	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.Appointment{}).
		Where("status = ?", models.AppointmentStatusPending).
		Count(&total).Error; err != nil {
		utils.LogError("Failed to count pending appointments: %v", err)
		utils.InternalServerError(c, "Failed to fetch pending appointments", nil)
		return
	}
	pagination.SetTotal(total)

	var appointments []models.Appointment
	if err := config.DB.Where("status = ?", models.AppointmentStatusPending).
		Order("date ASC, time_slot ASC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&appointments).Error; err != nil {
		utils.LogError("Failed to fetch pending appointments: %v", err)
		utils.InternalServerError(c, "Failed to fetch pending appointments", nil)
		return
	}

	utils.SendPaginatedResponse(c, appointments, pagination)
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
// Confirming an online session carries the meet link supplied by the
// conferencing integration; rejecting returns the slot to the free set.
func UpdateAppointmentStatus(c *gin.Context) {
	utils.LogInfo("UpdateAppointmentStatus called")

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
	utils.LogDebug("Admin authenticated: %s", adminModel.Email)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid appointment ID: %v", err)
		utils.BadRequest(c, "Invalid appointment ID", nil)
		return
	}

	var req struct {
		Status   string `json:"status" binding:"required"`
		MeetLink string `json:"meet_link"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid status payload: %v", err)
		utils.BadRequest(c, "Status is required", nil)
		return
	}
	utils.LogDebug("Requested status update of appointment %d to %s", appointmentID, req.Status)

	appointment, err := transitionAppointment(uint(appointmentID), req.Status, req.MeetLink)
	if err != nil {
		handleCoreError(c, err)
		return
	}

	utils.LogInfo("Appointment %d moved to %s by %s", appointment.ID, appointment.Status, adminModel.Email)
	utils.Success(c, "Appointment status updated successfully", gin.H{
		"appointment": appointment,
	})
}
