package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the interface all domain events implement
type DomainEvent interface {
	GetEventID() uuid.UUID
	GetEventType() string
	GetOccurredAt() time.Time
	GetAggregateID() uuid.UUID
	GetAggregateType() string
}

// BaseDomainEvent provides common fields for domain events
type BaseDomainEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	EventType     string    `json:"event_type"`
	OccurredAt    time.Time `json:"occurred_at"`
	AggregateID   uuid.UUID `json:"aggregate_id"`
	AggregateType string    `json:"aggregate_type"`
}

// GetEventID returns the event ID
func (e *BaseDomainEvent) GetEventID() uuid.UUID {
	return e.EventID
}

// GetEventType returns the event type
func (e *BaseDomainEvent) GetEventType() string {
	return e.EventType
}

// GetOccurredAt returns when the event occurred
func (e *BaseDomainEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}

// GetAggregateID returns the aggregate ID
func (e *BaseDomainEvent) GetAggregateID() uuid.UUID {
	return e.AggregateID
}

// GetAggregateType returns the aggregate type
func (e *BaseDomainEvent) GetAggregateType() string {
	return e.AggregateType
}

// NewBaseDomainEvent creates a new base domain event
func NewBaseDomainEvent(eventType string, aggregateID uuid.UUID, aggregateType string) BaseDomainEvent {
	return BaseDomainEvent{
		EventID:       uuid.New(),
		EventType:     eventType,
		OccurredAt:    time.Now(),
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
	}
}
