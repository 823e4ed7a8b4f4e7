package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// EventPublisher delivers order events to the event stream.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
