package controllers

import (
	"fmt"
	"time"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// DownloadLedgerStatement exports the wallet ledger as an Excel statement
// for offline reconciliation against the bank account.
func DownloadLedgerStatement(c *gin.Context) {
	utils.LogInfo("DownloadLedgerStatement called")

	period := c.DefaultQuery("period", "month")
	now := time.Now()
	var startDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		startDate = now.AddDate(0, 0, -7)
	case "month":
		startDate = now.AddDate(0, -1, 0)
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var transactions []models.WalletTransaction
	if err := config.DB.Where("created_at >= ?", startDate).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions: %v", err)
		utils.InternalServerError(c, "Failed to fetch transactions", nil)
		return
	}
	utils.LogDebug("Retrieved %d transactions for ledger statement", len(transactions))

	var approvedCredits, approvedDebits, pendingCredits int64
	for _, txn := range transactions {
		switch {
		case txn.Type == models.TransactionTypeCredit && txn.Status == models.TransactionStatusApproved:
			approvedCredits += txn.Amount
		case txn.Type == models.TransactionTypeDebit && txn.Status == models.TransactionStatusApproved:
			approvedDebits += txn.Amount
		case txn.Type == models.TransactionTypeCredit && txn.Status == models.TransactionStatusPending:
			pendingCredits += txn.Amount
		}
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Ledger Statement")
	if err != nil {
		utils.LogError("Failed to create sheet: %v", err)
		utils.InternalServerError(c, "Failed to generate statement", nil)
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("CALMSPACE - Wallet Ledger Statement")
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Period: " + period + " | since " + startDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	headerRow := sheet.AddRow()
	for _, h := range []string{"ID", "User ID", "Type", "Amount", "Status", "Bank Ref", "Appointment", "Created At"} {
		headerRow.AddCell().SetString(h)
	}

	for _, txn := range transactions {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(txn.ID))
		row.AddCell().SetInt(int(txn.UserID))
		row.AddCell().SetString(txn.Type)
		row.AddCell().SetInt64(txn.Amount)
		row.AddCell().SetString(txn.Status)
		row.AddCell().SetString(txn.TransactionID)
		if txn.ReferenceID != nil {
			row.AddCell().SetInt(int(*txn.ReferenceID))
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetString(txn.CreatedAt.Format("2006-01-02 15:04"))
	}

	sheet.AddRow() // spacing
	for _, line := range [][2]string{
		{"Approved credits", fmt.Sprintf("%d", approvedCredits)},
		{"Approved debits", fmt.Sprintf("%d", approvedDebits)},
		{"Pending credits (not spendable)", fmt.Sprintf("%d", pendingCredits)},
		{"Net approved", fmt.Sprintf("%d", approvedCredits-approvedDebits)},
	} {
		row := sheet.AddRow()
		row.AddCell().SetString(line[0])
		row.AddCell().SetString(line[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=ledger-statement.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write statement: %v", err)
	}
}
