package models

import (
	"gorm.io/gorm"
)

// Appointment status constants. Completed and Rejected are terminal.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusRejected  = "rejected"
)

// Session type constants
const (
	SessionTypeOnline  = "online"
	SessionTypeOffline = "offline"
)

// appointmentTransitions is the closed set of legal status moves.
var appointmentTransitions = map[string][]string{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusRejected},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusRejected},
}

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusRejected:
		return true
	}
	return false
}

// CanTransitionAppointment reports whether an appointment may move from one
// status to another. Nothing leaves a terminal status.
func CanTransitionAppointment(from, to string) bool {
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidSessionType reports whether s is a known session type.
func ValidSessionType(s string) bool {
	return s == SessionTypeOnline || s == SessionTypeOffline
}

// Appointment is a user's booking of one slot, carrying a lifecycle status.
// Date and TimeSlot are kept denormalized next to AvailabilityID so the
// booking survives a flush of its Availability record.
type Appointment struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"not null;index"`
	User           User   `json:"-" gorm:"foreignKey:UserID"`
	AvailabilityID uint   `json:"availability_id" gorm:"not null"`
	Date           string `json:"date" gorm:"not null;size:10"`
	TimeSlot       string `json:"time_slot" gorm:"not null;size:5"`
	TherapyType    string `json:"therapy_type"`
	SessionType    string `json:"session_type" gorm:"not null"`
	Notes          string `json:"notes"`
	MeetLink       string `json:"meet_link,omitempty"`
	Status         string `json:"status" gorm:"not null;default:'pending';index"`
}

// Terminal reports whether the appointment has reached a terminal status.
func (a *Appointment) Terminal() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusRejected
}
