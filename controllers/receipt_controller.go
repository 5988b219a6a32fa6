package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadSessionReceipt generates a PDF receipt for one of the user's
// completed sessions, including the wallet debit it was paid with.
func DownloadSessionReceipt(c *gin.Context) {
	utils.LogInfo("DownloadSessionReceipt called")

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

	appointmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid appointment ID in receipt request: %v", err)
		utils.BadRequest(c, "Invalid appointment ID", nil)
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ? AND user_id = ?", appointmentID, user.ID).
		First(&appointment).Error; err != nil {
		utils.LogError("Appointment not found for receipt - ID: %d, User: %d", appointmentID, user.ID)
		utils.NotFound(c, "Appointment not found")
		return
	}

	if appointment.Status != models.AppointmentStatusCompleted {
		handleCoreError(c, utils.BadRequestError("Receipts are only available for completed sessions", nil))
		return
	}

	var charge models.WalletTransaction
	hasCharge := config.DB.Where("user_id = ? AND type = ? AND reference_id = ?",
		user.ID, models.TransactionTypeDebit, appointment.ID).
		First(&charge).Error == nil

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "CalmSpace")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@calmspace.in")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "SESSION RECEIPT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Appointment ID: "+strconv.Itoa(int(appointment.ID)))
	pdf.Cell(60, 8, "Date: "+appointment.Date+" "+appointment.TimeSlot)
	pdf.Ln(8)
	pdf.Cell(60, 8, "Therapy: "+appointment.TherapyType)
	pdf.Cell(60, 8, "Session type: "+appointment.SessionType)
	pdf.Ln(8)
	pdf.Cell(60, 8, "Client: "+user.Username)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "Amount paid from wallet:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	if hasCharge {
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", charge.Amount), "", 1, "R", false, 0, "")
	} else {
		pdf.CellFormat(30, 8, "-", "", 1, "R", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for choosing CalmSpace.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render receipt PDF: %v", err)
		utils.InternalServerError(c, "Failed to generate receipt", nil)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=receipt.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
