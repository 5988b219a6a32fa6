package models

import (
	"time"

	"gorm.io/gorm"
)

// Date and slot wire formats. Dates are calendar days, slots are times of day.
const (
	DateLayout = "2006-01-02"
	SlotLayout = "15:04"
)

// Availability is an admin-declared set of bookable time slots for one
// calendar date. A date has at most one record.
type Availability struct {
	gorm.Model
	Date  string             `json:"date" gorm:"uniqueIndex;not null;size:10"`
	Slots []AvailabilitySlot `json:"slots" gorm:"foreignKey:AvailabilityID;constraint:OnDelete:CASCADE"`
}

// AvailabilitySlot is a single time-of-day value within an Availability
// record, the unit of reservation. Booked flips to true the moment a
// reservation claims it; the free set is the rows where Booked is false.
type AvailabilitySlot struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	AvailabilityID uint   `json:"availability_id" gorm:"uniqueIndex:idx_availability_slot;not null"`
	Time           string `json:"time" gorm:"uniqueIndex:idx_availability_slot;not null;size:5"`
	Booked         bool   `json:"booked" gorm:"default:false;not null"`
}

// ValidDate reports whether s is a calendar day in the wire format.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidSlot reports whether s is a time of day in the wire format.
func ValidSlot(s string) bool {
	_, err := time.Parse(SlotLayout, s)
	return err == nil
}
