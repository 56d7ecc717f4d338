package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesRegisteredClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Send: make(chan []byte, 1)}
	hub.Register <- client

	BroadcastAppointmentEvent(hub, AppointmentEvent{
		Type:          EventAppointmentCreated,
		IDAppointment: 11,
		Status:        "pending",
	})

	select {
	case payload := <-client.Send:
		var event AppointmentEvent
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, EventAppointmentCreated, event.Type)
		assert.Equal(t, int64(11), event.IDAppointment)
		assert.Equal(t, "pending", event.Status)
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}

	hub.Unregister <- client
}
