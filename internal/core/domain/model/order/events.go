package order

import (
	"errors"
	"maps"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// EventName identifies the kind of change an Event records.
type EventName string

const (
	EventOrderCreated         EventName = "order.created"
	EventOrderCustomerInfoSet EventName = "order.customer_info_set"
	EventOrderPaid            EventName = "order.paid"
)

// Event is a change of an order recorded by the aggregate. Events are
// collected until the unit of work stores them in the outbox on commit.
type Event struct {
	id         kernel.UUID
	orderID    kernel.UUID
	name       EventName
	occurredAt time.Time
	attributes map[string]string
}

func newEvent(orderID kernel.UUID, name EventName, attributes map[string]string) Event {
	return Event{
		id:         kernel.NewUUID(),
		orderID:    orderID,
		name:       name,
		occurredAt: time.Now().UTC(),
		attributes: attributes,
	}
}

func (e Event) ID() kernel.UUID {
	return e.id
}

func (e Event) OrderID() kernel.UUID {
	return e.orderID
}

func (e Event) Name() EventName {
	return e.name
}

func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}

// Attributes returns the order values captured when the event occurred,
// amounts formatted with two decimals.
func (e Event) Attributes() map[string]string {
	return maps.Clone(e.attributes)
}

// RestoreEvent rebuilds an event read back from the outbox.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	name EventName,
	occurredAt time.Time,
	attributes map[string]string,
) (Event, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return Event{}, err
	}
	if name == "" {
		return Event{}, errs.NewValueIsRequiredError("event name")
	}

	return Event{
		id:         id,
		orderID:    orderID,
		name:       name,
		occurredAt: occurredAt,
		attributes: maps.Clone(attributes),
	}, nil
}
