package controllers

import (
	"testing"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestTopup_Validation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")

	_, err := requestTopup(user.ID, 0, "UTR123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = requestTopup(user.ID, -50, "UTR123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = requestTopup(user.ID, 500, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTopupLifecycle(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")

	transaction, err := requestTopup(user.ID, 500, "UTR123")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, transaction.Status)

	// Pending money is not spendable
	balance, err := walletBalance(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)

	approved, err := resolveTopup(transaction.ID, TopupDecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusApproved, approved.Status)

	balance, err = walletBalance(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 500, balance)

	// Second resolution is refused and credits nothing
	_, err = resolveTopup(transaction.ID, TopupDecisionApprove)
	assert.ErrorIs(t, err, ErrAlreadyResolved)

	balance, err = walletBalance(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 500, balance)
}

func TestResolveTopup_Reject(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")

	transaction, err := requestTopup(user.ID, 500, "UTR123")
	require.NoError(t, err)

	rejected, err := resolveTopup(transaction.ID, TopupDecisionReject)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusRejected, rejected.Status)

	balance, err := walletBalance(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)

	// Rejection is just as terminal as approval
	_, err = resolveTopup(transaction.ID, TopupDecisionApprove)
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestResolveTopup_BadInput(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")

	transaction, err := requestTopup(user.ID, 500, "UTR123")
	require.NoError(t, err)

	_, err = resolveTopup(transaction.ID, "maybe")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = resolveTopup(4242, TopupDecisionApprove)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChargeForSession_InsufficientBalance(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")
	approvedTopup(t, user.ID, 200, "UTR123")
	appointment := seedChargeableAppointment(t, user.ID)

	_, err := chargeForSession(user.ID, appointment.ID, 300)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	balance, err := walletBalance(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 200, balance, "failed charge leaves balance untouched")
}

func TestChargeForSession_DebitsAndRecords(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")
	approvedTopup(t, user.ID, 500, "UTR123")
	appointment := seedChargeableAppointment(t, user.ID)

	transaction, err := chargeForSession(user.ID, appointment.ID, 300)
	require.NoError(t, err)

	assert.Equal(t, models.TransactionTypeDebit, transaction.Type)
	assert.Equal(t, models.TransactionStatusApproved, transaction.Status, "debits are final, not held for approval")
	require.NotNil(t, transaction.ReferenceID)
	assert.Equal(t, appointment.ID, *transaction.ReferenceID)

	balance, err := walletBalance(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 200, balance)
}

func TestChargeForSession_BadInput(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")
	other := createTestUser(t, "binod")
	approvedTopup(t, user.ID, 500, "UTR123")
	appointment := seedChargeableAppointment(t, user.ID)

	_, err := chargeForSession(user.ID, appointment.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = chargeForSession(user.ID, 4242, 100)
	assert.ErrorIs(t, err, ErrNotFound)

	// Another user's appointment is not chargeable
	_, err = chargeForSession(other.ID, appointment.ID, 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBalanceReconciliation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")
	appointment := seedChargeableAppointment(t, user.ID)

	// Interleave the three balance-affecting operations
	first, err := requestTopup(user.ID, 500, "UTR1")
	require.NoError(t, err)
	second, err := requestTopup(user.ID, 300, "UTR2")
	require.NoError(t, err)
	third, err := requestTopup(user.ID, 900, "UTR3")
	require.NoError(t, err)

	_, err = resolveTopup(first.ID, TopupDecisionApprove)
	require.NoError(t, err)
	_, err = chargeForSession(user.ID, appointment.ID, 150)
	require.NoError(t, err)
	_, err = resolveTopup(second.ID, TopupDecisionReject)
	require.NoError(t, err)
	_, err = resolveTopup(third.ID, TopupDecisionApprove)
	require.NoError(t, err)
	_, err = chargeForSession(user.ID, appointment.ID, 250)
	require.NoError(t, err)

	// approved credits (500 + 900) minus committed debits (150 + 250)
	derived, err := walletBalance(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, derived)

	// The guard row never drifts from the ledger it guards
	var wallet models.Wallet
	require.NoError(t, config.DB.Where("user_id = ?", user.ID).First(&wallet).Error)
	assert.Equal(t, derived, wallet.Balance)
}

// seedChargeableAppointment books a slot for the user so debits have a real
// appointment to reference.
func seedChargeableAppointment(t *testing.T, userID uint) *models.Appointment {
	t.Helper()

	seedAvailability(t, "2025-06-01", []string{"10:00"})
	appointment, err := reserveSlot(userID, "2025-06-01", "10:00", "cbt", models.SessionTypeOffline, "")
	require.NoError(t, err)
	return appointment
}
