package controllers

import (
	"errors"

	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/gin-gonic/gin"
)

// Sentinel errors returned by the scheduling and ledger core. All of them are
// recoverable at the caller; anything else that bubbles up is treated as the
// storage layer being unavailable.
var (
	// ErrInvalidInput marks malformed input, e.g. an empty slot set or a
	// non-positive amount.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a referenced availability, appointment or
	// transaction that does not exist (or was flushed mid-flight).
	ErrNotFound = errors.New("not found")

	// ErrSlotConflict is returned to the loser of a reservation race. The
	// caller should refresh the availability view and retry.
	ErrSlotConflict = errors.New("slot already booked")

	// ErrInvalidTransition marks a status move the appointment state
	// machine does not define, including moves from a state that changed
	// under a concurrent admin action.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyResolved is returned when a top-up is resolved a second
	// time. The first resolution stands; balance is unchanged.
	ErrAlreadyResolved = errors.New("transaction already resolved")

	// ErrInsufficientBalance is returned when a debit exceeds the user's
	// spendable balance at the instant of the check.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)

// handleCoreError translates a core error into the standard response
// envelope. Unrecognized errors are reported as a generic retry-later
// failure, never surfaced raw to the client.
func handleCoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		utils.ValidationError(c, err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, ErrSlotConflict):
		utils.Conflict(c, "Slot already booked, please pick another time", gin.H{"retry": true})
	case errors.Is(err, ErrInvalidTransition):
		utils.BadRequest(c, err.Error(), nil)
	case errors.Is(err, ErrAlreadyResolved):
		utils.Conflict(c, err.Error(), nil)
	case errors.Is(err, ErrInsufficientBalance):
		utils.BadRequest(c, "Insufficient wallet balance", nil)
	default:
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		utils.LogError("Unexpected core error: %v", err)
		utils.InternalServerError(c, "Something went wrong, please try again later", nil)
	}
}
