package controllers

import (
	"errors"
	"fmt"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"gorm.io/gorm"
)

// reserveSlot claims one slot for a user and creates the pending appointment
// in a single database transaction. The claim is a conditional update keyed
// on the slot still being free, so of two concurrent reservations for the
// same (date, time) exactly one commits; the other gets ErrSlotConflict.
func reserveSlot(userID uint, date, timeSlot, therapyType, sessionType, notes string) (*models.Appointment, error) {
	if !models.ValidDate(date) {
		return nil, fmt.Errorf("date %q is not a valid YYYY-MM-DD day: %w", date, ErrInvalidInput)
	}
	if !models.ValidSlot(timeSlot) {
		return nil, fmt.Errorf("slot %q is not a valid HH:MM time: %w", timeSlot, ErrInvalidInput)
	}
	if !models.ValidSessionType(sessionType) {
		return nil, fmt.Errorf("session type must be online or offline: %w", ErrInvalidInput)
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var availability models.Availability
	if err := tx.Where("date = ?", date).First(&availability).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no schedule for %s: %w", date, ErrNotFound)
		}
		return nil, err
	}

	res := tx.Model(&models.AvailabilitySlot{}).
		Where("availability_id = ? AND time = ? AND booked = ?", availability.ID, timeSlot, false).
		Update("booked", true)
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.AvailabilitySlot{}).
			Where("availability_id = ? AND time = ?", availability.ID, timeSlot).
			Count(&count).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		tx.Rollback()
		if count == 0 {
			return nil, fmt.Errorf("slot %s is not offered on %s: %w", timeSlot, date, ErrNotFound)
		}
		return nil, ErrSlotConflict
	}

	appointment := models.Appointment{
		UserID:         userID,
		AvailabilityID: availability.ID,
		Date:           date,
		TimeSlot:       timeSlot,
		TherapyType:    therapyType,
		SessionType:    sessionType,
		Notes:          notes,
		Status:         models.AppointmentStatusPending,
	}
	if err := tx.Create(&appointment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// releaseSlot returns a rejected appointment's slot to the free set. If the
// availability record was deleted in the meantime the update matches nothing,
// which is the required no-op.
func releaseSlot(tx *gorm.DB, availabilityID uint, timeSlot string) error {
	return tx.Model(&models.AvailabilitySlot{}).
		Where("availability_id = ? AND time = ? AND booked = ?", availabilityID, timeSlot, true).
		Update("booked", false).Error
}
