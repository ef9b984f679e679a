package notifications

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventTypeReservationConfirmed EventType = "reservation_confirmed"
	EventTypeReservationCancelled EventType = "reservation_cancelled"
)

// ReservationEvent is the lifecycle event published for downstream consumers
// (ticket delivery, analytics). Keyed by reservation id so events for one
// reservation stay ordered within a partition.
type ReservationEvent struct {
	Type          EventType `json:"type"`
	ReservationID string    `json:"reservation_id"`
	Seats         int       `json:"seats"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (e *ReservationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func (e *ReservationEvent) GetPartitionKey() string {
	return e.ReservationID
}
