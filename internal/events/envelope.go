package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventEnvelope wraps every storefront event. The order id is the partition key, so a
// consumer sees one order's events in publish order.
type EventEnvelope[T any] struct {
	EventName     string    `json:"eventName"`
	EventVersion  int       `json:"eventVersion"`
	EventID       string    `json:"eventId"`
	CorrelationID string    `json:"correlationId,omitempty"`
	Producer      string    `json:"producer"`
	PartitionKey  string    `json:"partitionKey"`
	OccurredAt    time.Time `json:"occurredAt"`
	Payload       T         `json:"payload"`
}

// Metadata is the request context copied onto an event.
type Metadata struct {
	CorrelationID string
}

func newEnvelope[T any](name string, version int, orderID string, meta Metadata, now time.Time, payload T) EventEnvelope[T] {
	return EventEnvelope[T]{
		EventName:     name,
		EventVersion:  version,
		EventID:       uuid.NewString(),
		CorrelationID: meta.CorrelationID,
		Producer:      producerName,
		PartitionKey:  orderID,
		OccurredAt:    now.UTC(),
		Payload:       payload,
	}
}

// Validate checks that a decoded envelope is the event the caller expects.
func (e EventEnvelope[T]) Validate(name string, version int) error {
	switch {
	case e.EventName != name:
		return fmt.Errorf("events: got %s, want %s", e.EventName, name)
	case e.EventVersion != version:
		return fmt.Errorf("events: %s version %d, want %d", name, e.EventVersion, version)
	case e.EventID == "":
		return errors.New("events: missing eventId")
	case e.PartitionKey == "":
		return errors.New("events: missing partitionKey")
	}
	return nil
}
