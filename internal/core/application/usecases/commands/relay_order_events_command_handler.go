package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
)

var ErrNoOrderEventsToRelay = errors.New("no order events to relay")

// RelayOrderEventsCommandHandler moves events from the outbox to the event
// stream. Events are published in the order they were stored; the first
// failure stops the batch and the remaining events stay unpublished for the
// next run. Delivery is at least once.
type RelayOrderEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOrderEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) RelayOrderEventsCommandHandler {
	return RelayOrderEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle relays one batch. It returns ErrNoOrderEventsToRelay when the
// outbox is empty.
func (h RelayOrderEventsCommandHandler) Handle(ctx context.Context, cmd RelayOrderEventsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OrderEventRepository()
	events, err := outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return ErrNoOrderEventsToRelay
	}

	published := make([]kernel.UUID, 0, len(events))
	var publishErr error
	for _, event := range events {
		if publishErr = h.publisher.Publish(ctx, event); publishErr != nil {
			publishErr = fmt.Errorf("failed to publish order event %s: %w", event.ID(), publishErr)
			break
		}
		published = append(published, event.ID())
	}

	if len(published) > 0 {
		if err = outbox.MarkPublished(ctx, published); err != nil {
			return errors.Join(publishErr, err)
		}

		if err = uow.Commit(ctx); err != nil {
			return errors.Join(publishErr, err)
		}
	}

	return publishErr
}
