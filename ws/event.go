package ws

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Event types pushed to staff dashboards.
const (
	EventAppointmentCreated       = "appointment_created"
	EventAppointmentStatusChanged = "appointment_status_changed"
)

// AppointmentEvent is the wire form of an appointment lifecycle notification.
type AppointmentEvent struct {
	Type          string `json:"type"`
	IDAppointment int64  `json:"id_appointment"`
	Status        string `json:"status"`
}

// BroadcastAppointmentEvent fans the event out to every connected client.
func BroadcastAppointmentEvent(hub *Hub, event AppointmentEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Warn("failed to encode appointment event")
		return
	}
	hub.Broadcast <- payload
}
