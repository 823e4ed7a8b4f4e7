package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderEventRepository is the outbox of order events. Events are added in the
// transaction that changed the order and published later by the relay.
type OrderEventRepository interface {
	// Add stores events as unpublished.
	Add(ctx context.Context, events []order.Event) error

	// GetUnpublished returns up to limit unpublished events, oldest first.
	// Returned rows are locked and skipped by concurrent relays.
	GetUnpublished(ctx context.Context, limit int) ([]order.Event, error)

	// MarkPublished flags events as delivered to the event stream.
	MarkPublished(ctx context.Context, ids []kernel.UUID) error
}
