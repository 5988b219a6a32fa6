package controllers

import (
	"errors"
	"fmt"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"gorm.io/gorm"
)

// transitionAppointment drives the appointment state machine. The commit is a
// conditional update keyed on the status the decision was made against, so
// two concurrent admin actions cannot both apply; the loser sees the move as
// undefined from the new state.
func transitionAppointment(appointmentID uint, target, meetLink string) (*models.Appointment, error) {
	if !models.ValidAppointmentStatus(target) {
		return nil, fmt.Errorf("unknown status %q: %w", target, ErrInvalidInput)
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var appointment models.Appointment
	if err := tx.First(&appointment, appointmentID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("appointment %d: %w", appointmentID, ErrNotFound)
		}
		return nil, err
	}

	if !models.CanTransitionAppointment(appointment.Status, target) {
		tx.Rollback()
		return nil, fmt.Errorf("%s -> %s: %w", appointment.Status, target, ErrInvalidTransition)
	}

	// The conferencing integration supplies the link; confirming an online
	// session without one would leave the user with no way to join.
	if target == models.AppointmentStatusConfirmed &&
		appointment.SessionType == models.SessionTypeOnline && meetLink == "" {
		tx.Rollback()
		return nil, fmt.Errorf("meet_link is required to confirm an online session: %w", ErrInvalidInput)
	}

	updates := map[string]interface{}{"status": target}
	if target == models.AppointmentStatusConfirmed && meetLink != "" {
		updates["meet_link"] = meetLink
	}

	res := tx.Model(&models.Appointment{}).
		Where("id = ? AND status = ?", appointment.ID, appointment.Status).
		Updates(updates)
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, fmt.Errorf("appointment %d changed concurrently: %w", appointment.ID, ErrInvalidTransition)
	}

	if target == models.AppointmentStatusRejected {
		if err := releaseSlot(tx, appointment.AvailabilityID, appointment.TimeSlot); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	appointment.Status = target
	if link, ok := updates["meet_link"].(string); ok {
		appointment.MeetLink = link
	}
	return &appointment, nil
}
