package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"gorm.io/gorm"
)

// Top-up resolution decisions
const (
	TopupDecisionApprove = "approve"
	TopupDecisionReject  = "reject"
)

// getOrCreateWallet retrieves or creates the guard row for a user. Must run
// inside the caller's transaction so the create commits with the ledger write.
func getOrCreateWallet(tx *gorm.DB, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := tx.Where("user_id = ?", userID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = models.Wallet{UserID: userID, Balance: 0}
		if err := tx.Create(&wallet).Error; err != nil {
			return nil, err
		}
		return &wallet, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// walletBalance derives a user's spendable balance from the ledger: the sum
// of approved credits minus the sum of approved debits. Pending and rejected
// entries never contribute.
func walletBalance(userID uint) (int64, error) {
	sum := func(txType string) (int64, error) {
		var total int64
		err := config.DB.Model(&models.WalletTransaction{}).
			Where("user_id = ? AND type = ? AND status = ?", userID, txType, models.TransactionStatusApproved).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).Error
		return total, err
	}

	credits, err := sum(models.TransactionTypeCredit)
	if err != nil {
		return 0, err
	}
	debits, err := sum(models.TransactionTypeDebit)
	if err != nil {
		return 0, err
	}
	return credits - debits, nil
}

// requestTopup records a user's bank-transfer claim as a pending credit.
// Balance is untouched until an admin approves it.
func requestTopup(userID uint, amount int64, bankReferenceID string) (*models.WalletTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(bankReferenceID) == "" {
		return nil, fmt.Errorf("bank reference is required: %w", ErrInvalidInput)
	}

	transaction := models.WalletTransaction{
		UserID:        userID,
		Type:          models.TransactionTypeCredit,
		Amount:        amount,
		TransactionID: strings.TrimSpace(bankReferenceID),
		Description:   "Wallet topup via bank transfer",
		Status:        models.TransactionStatusPending,
	}
	if err := config.DB.Create(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// resolveTopup settles a pending credit exactly once. The status move is a
// conditional update keyed on the entry still being pending, so of two
// concurrent approvals exactly one credits the balance; the other gets
// ErrAlreadyResolved.
func resolveTopup(transactionID uint, decision string) (*models.WalletTransaction, error) {
	var target string
	switch decision {
	case TopupDecisionApprove:
		target = models.TransactionStatusApproved
	case TopupDecisionReject:
		target = models.TransactionStatusRejected
	default:
		return nil, fmt.Errorf("decision must be approve or reject: %w", ErrInvalidInput)
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var transaction models.WalletTransaction
	if err := tx.First(&transaction, transactionID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction %d: %w", transactionID, ErrNotFound)
		}
		return nil, err
	}

	if transaction.Type != models.TransactionTypeCredit {
		tx.Rollback()
		return nil, fmt.Errorf("transaction %d is not a topup: %w", transactionID, ErrInvalidInput)
	}

	res := tx.Model(&models.WalletTransaction{}).
		Where("id = ? AND status = ?", transaction.ID, models.TransactionStatusPending).
		Update("status", target)
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, fmt.Errorf("transaction %d: %w", transaction.ID, ErrAlreadyResolved)
	}

	if target == models.TransactionStatusApproved {
		wallet, err := getOrCreateWallet(tx, transaction.UserID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
			UpdateColumn("balance", gorm.Expr("balance + ?", transaction.Amount)).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	transaction.Status = target
	return &transaction, nil
}

// chargeForSession debits a user's wallet for an appointment. Debits are
// system-issued and final: they enter the ledger already approved and are not
// subject to the admin resolution step that credits go through. The funds
// check and the debit insert commit together; the conditional balance update
// on the guard row serializes concurrent debits for the same user.
func chargeForSession(userID, appointmentID uint, amount int64) (*models.WalletTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("appointment %d: %w", appointmentID, ErrNotFound)
		}
		return nil, err
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	wallet, err := getOrCreateWallet(tx, userID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	res := tx.Model(&models.Wallet{}).
		Where("id = ? AND balance >= ?", wallet.ID, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrInsufficientBalance
	}

	refID := appointmentID
	transaction := models.WalletTransaction{
		UserID:      userID,
		Type:        models.TransactionTypeDebit,
		Amount:      amount,
		ReferenceID: &refID,
		Description: fmt.Sprintf("Session charge for appointment #%d", appointmentID),
		Status:      models.TransactionStatusApproved,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}
