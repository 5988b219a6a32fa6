package controllers

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"gorm.io/gorm"
)

// normalizeSlots validates, deduplicates and sorts a slot set so the stored
// representation is deterministic.
func normalizeSlots(slots []string) ([]string, error) {
	seen := make(map[string]bool, len(slots))
	normalized := make([]string, 0, len(slots))
	for _, slot := range slots {
		if !models.ValidSlot(slot) {
			return nil, fmt.Errorf("slot %q is not a valid HH:MM time: %w", slot, ErrInvalidInput)
		}
		if seen[slot] {
			continue
		}
		seen[slot] = true
		normalized = append(normalized, slot)
	}
	sort.Strings(normalized)
	return normalized, nil
}

// upsertAvailability creates the slot set for a date or adds missing slots to
// an existing record. Already-booked slots are never touched.
func upsertAvailability(date string, slots []string) (*models.Availability, error) {
	if !models.ValidDate(date) {
		return nil, fmt.Errorf("date %q is not a valid YYYY-MM-DD day: %w", date, ErrInvalidInput)
	}
	normalized, err := normalizeSlots(slots)
	if err != nil {
		return nil, err
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var availability models.Availability
	err = tx.Where("date = ?", date).First(&availability).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if len(normalized) == 0 {
			tx.Rollback()
			return nil, fmt.Errorf("at least one slot is required: %w", ErrInvalidInput)
		}
		availability = models.Availability{Date: date}
		for _, slot := range normalized {
			availability.Slots = append(availability.Slots, models.AvailabilitySlot{Time: slot})
		}
		if err := tx.Create(&availability).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
		return &availability, nil
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	var existing []models.AvailabilitySlot
	if err := tx.Where("availability_id = ?", availability.ID).Find(&existing).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	present := make(map[string]bool, len(existing))
	for _, slot := range existing {
		present[slot.Time] = true
	}

	for _, slot := range normalized {
		if present[slot] {
			continue
		}
		if err := tx.Create(&models.AvailabilitySlot{AvailabilityID: availability.ID, Time: slot}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if err := config.DB.Preload("Slots").First(&availability, availability.ID).Error; err != nil {
		return nil, err
	}
	return &availability, nil
}

// fetchAvailability returns the record for a date together with its free
// slots in display order.
func fetchAvailability(date string) (*models.Availability, []string, error) {
	if !models.ValidDate(date) {
		return nil, nil, fmt.Errorf("date %q is not a valid YYYY-MM-DD day: %w", date, ErrInvalidInput)
	}

	var availability models.Availability
	if err := config.DB.Where("date = ?", date).First(&availability).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("no schedule for %s: %w", date, ErrNotFound)
		}
		return nil, nil, err
	}

	var slots []models.AvailabilitySlot
	if err := config.DB.Where("availability_id = ? AND booked = ?", availability.ID, false).
		Order("time ASC").Find(&slots).Error; err != nil {
		return nil, nil, err
	}

	free := make([]string, 0, len(slots))
	for _, slot := range slots {
		free = append(free, slot.Time)
	}
	return &availability, free, nil
}

// removeAvailability deletes a whole record and its slot set by id. The
// confirmation step for deleting the last slot lives in the admin UI; the
// store deletes unconditionally.
func removeAvailability(id uint) error {
	tx := config.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var availability models.Availability
	if err := tx.First(&availability, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("availability %d: %w", id, ErrNotFound)
		}
		return err
	}

	if err := tx.Where("availability_id = ?", availability.ID).Delete(&models.AvailabilitySlot{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Unscoped().Delete(&availability).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// FlushPastAvailabilityNow runs the past-date sweep against the wall clock.
// Shared by the admin endpoint and the nightly janitor.
func FlushPastAvailabilityNow() (int64, error) {
	return flushPastAvailability(time.Now())
}

// flushPastAvailability deletes every record whose date is strictly before
// now. Running it with nothing to flush is a no-op.
func flushPastAvailability(now time.Time) (int64, error) {
	today := now.Format(models.DateLayout)

	tx := config.DB.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	var stale []models.Availability
	if err := tx.Where("date < ?", today).Find(&stale).Error; err != nil {
		tx.Rollback()
		return 0, err
	}
	if len(stale) == 0 {
		tx.Rollback()
		return 0, nil
	}

	ids := make([]uint, 0, len(stale))
	for _, availability := range stale {
		ids = append(ids, availability.ID)
	}

	if err := tx.Where("availability_id IN ?", ids).Delete(&models.AvailabilitySlot{}).Error; err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Unscoped().Where("id IN ?", ids).Delete(&models.Availability{}).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}
