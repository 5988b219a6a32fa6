package models

import (
	"time"

	"gorm.io/gorm"
)

// Wallet is the per-user guard row for balance-affecting writes. Balance is
// maintained in the same database transaction as every ledger write and is
// only ever changed through conditional updates, so it cannot drift from the
// transaction history. User-facing reads derive the balance from the ledger.
type Wallet struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	Balance   int64          `json:"balance" gorm:"default:0;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// WalletTransaction is a single ledger entry: a credit top-up awaiting admin
// approval, or a debit charge issued by the booking flow. Amount is a whole
// number of currency units and always positive; Type carries the sign.
type WalletTransaction struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `json:"user_id" gorm:"not null;index"`
	Type          string         `json:"type" gorm:"not null"`
	Amount        int64          `json:"amount" gorm:"not null"`
	ReferenceID   *uint          `json:"reference_id"`
	TransactionID string         `json:"transaction_id"`
	Description   string         `json:"description"`
	Status        string         `json:"status" gorm:"not null;default:'pending';index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TransactionType constants
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// TransactionStatus constants. Approved and Rejected are terminal; debits are
// system-issued and enter the ledger already approved.
const (
	TransactionStatusPending  = "pending"
	TransactionStatusApproved = "approved"
	TransactionStatusRejected = "rejected"
)
