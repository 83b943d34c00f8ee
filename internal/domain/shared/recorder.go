package shared

import "context"

// EventRecorder persists domain events raised by aggregates into the
// mutation journal. Implementations must preserve call order.
type EventRecorder interface {
	Record(ctx context.Context, events ...DomainEvent) error
}
