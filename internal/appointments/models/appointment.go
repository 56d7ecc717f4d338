package models

import (
	"fmt"
	"time"
)

// Status is the closed set of appointment states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ParseStatus maps a submitted value onto the closed enumeration.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// allowed transitions: pending may be confirmed or cancelled, confirmed may be
// completed or cancelled; cancelled and completed are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether the appointment may move from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment links an account, a doctor and a service to a requested time slot.
type Appointment struct {
	ID         int       `json:"id"`
	IDAccount  int       `json:"id_account"`
	IDDoctor   int       `json:"id_doctor"`
	IDService  int       `json:"id_service"`
	PetName    string    `json:"pet_name"`
	PetSpecies string    `json:"pet_species"`
	PetAge     int       `json:"pet_age"`
	DateTime   time.Time `json:"date_time"`
	Status     Status    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AppointmentDetail widens Appointment with the doctor and service names the
// profile views display.
type AppointmentDetail struct {
	Appointment
	DoctorName  string `json:"doctor_name"`
	ServiceName string `json:"service_name"`
}
