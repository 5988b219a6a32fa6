package controllers

import (
	"testing"
	"time"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertAvailability_DedupesAndSorts(t *testing.T) {
	setupTestDB(t)

	availability, err := upsertAvailability("2025-06-01", []string{"11:00", "10:00", "10:00", "09:30"})
	require.NoError(t, err)

	times := make([]string, 0, len(availability.Slots))
	for _, slot := range availability.Slots {
		times = append(times, slot.Time)
	}
	assert.Equal(t, []string{"09:30", "10:00", "11:00"}, times)
}

func TestUpsertAvailability_EmptySlotsOnCreate(t *testing.T) {
	setupTestDB(t)

	_, err := upsertAvailability("2025-06-01", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpsertAvailability_RejectsMalformedInput(t *testing.T) {
	setupTestDB(t)

	_, err := upsertAvailability("June 1st", []string{"10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = upsertAvailability("2025-06-01", []string{"25:99"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpsertAvailability_AddsMissingSlotsToExisting(t *testing.T) {
	setupTestDB(t)
	seedAvailability(t, "2025-06-01", []string{"10:00", "11:00"})

	availability, err := upsertAvailability("2025-06-01", []string{"09:00", "10:00"})
	require.NoError(t, err)

	_, free, err := fetchAvailability("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, free)

	// Still a single record for the date
	var count int64
	require.NoError(t, config.DB.Model(&models.Availability{}).Where("date = ?", "2025-06-01").Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Len(t, availability.Slots, 3)
}

func TestFetchAvailability_NotFound(t *testing.T) {
	setupTestDB(t)

	_, _, err := fetchAvailability("2025-06-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveAvailability(t *testing.T) {
	setupTestDB(t)
	availability := seedAvailability(t, "2025-06-01", []string{"10:00"})

	require.NoError(t, removeAvailability(availability.ID))

	_, _, err := fetchAvailability("2025-06-01")
	assert.ErrorIs(t, err, ErrNotFound)

	// Slot rows go with the record
	var count int64
	require.NoError(t, config.DB.Model(&models.AvailabilitySlot{}).Where("availability_id = ?", availability.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	assert.ErrorIs(t, removeAvailability(availability.ID), ErrNotFound)
}

func TestFlushPastAvailability(t *testing.T) {
	setupTestDB(t)
	seedAvailability(t, "2025-06-01", []string{"10:00"})
	seedAvailability(t, "2025-06-02", []string{"10:00"})
	seedAvailability(t, "2025-06-03", []string{"10:00"})

	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)

	flushed, err := flushPastAvailability(now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, flushed, "only dates strictly before today are flushed")

	_, _, err = fetchAvailability("2025-06-01")
	assert.ErrorIs(t, err, ErrNotFound)
	_, _, err = fetchAvailability("2025-06-02")
	assert.NoError(t, err)
	_, _, err = fetchAvailability("2025-06-03")
	assert.NoError(t, err)

	// Second run is a no-op, not an error
	flushed, err = flushPastAvailability(now)
	require.NoError(t, err)
	assert.EqualValues(t, 0, flushed)
}
