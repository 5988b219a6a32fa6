package controllers

import (
	"testing"

	"github.com/Meghana-710/CalmSpace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveSlot_CreatesPendingAppointment(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")
	seedAvailability(t, "2025-06-01", []string{"10:00", "11:00"})

	appointment, err := reserveSlot(user.ID, "2025-06-01", "10:00", "cbt", models.SessionTypeOnline, "first session")
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentStatusPending, appointment.Status)
	assert.Equal(t, user.ID, appointment.UserID)
	assert.Equal(t, "2025-06-01", appointment.Date)
	assert.Equal(t, "10:00", appointment.TimeSlot)
	assert.Empty(t, appointment.MeetLink)

	// The claimed slot leaves the free set
	_, free, err := fetchAvailability("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00"}, free)
}

func TestReserveSlot_LoserGetsConflict(t *testing.T) {
	setupTestDB(t)
	userA := createTestUser(t, "asha")
	userB := createTestUser(t, "binod")
	seedAvailability(t, "2025-06-01", []string{"10:00", "11:00"})

	_, err := reserveSlot(userA.ID, "2025-06-01", "10:00", "cbt", models.SessionTypeOffline, "")
	require.NoError(t, err)

	_, err = reserveSlot(userB.ID, "2025-06-01", "10:00", "cbt", models.SessionTypeOffline, "")
	assert.ErrorIs(t, err, ErrSlotConflict)

	// The loser retries against the refreshed view and takes the other slot
	appointment, err := reserveSlot(userB.ID, "2025-06-01", "11:00", "cbt", models.SessionTypeOffline, "")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusPending, appointment.Status)
}

func TestReserveSlot_UnknownDate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")

	_, err := reserveSlot(user.ID, "2025-06-01", "10:00", "cbt", models.SessionTypeOffline, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReserveSlot_SlotNeverOffered(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")
	seedAvailability(t, "2025-06-01", []string{"10:00"})

	_, err := reserveSlot(user.ID, "2025-06-01", "12:00", "cbt", models.SessionTypeOffline, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReserveSlot_AfterAvailabilityDeleted(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")
	availability := seedAvailability(t, "2025-06-01", []string{"10:00"})

	require.NoError(t, removeAvailability(availability.ID))

	// A stale booking attempt against the deleted date
	_, err := reserveSlot(user.ID, "2025-06-01", "10:00", "cbt", models.SessionTypeOffline, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReserveSlot_RejectsMalformedInput(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "asha")
	seedAvailability(t, "2025-06-01", []string{"10:00"})

	_, err := reserveSlot(user.ID, "2025-06-01", "10:00", "cbt", "hybrid", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = reserveSlot(user.ID, "someday", "10:00", "cbt", models.SessionTypeOnline, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
