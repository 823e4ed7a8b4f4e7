package commands

import (
	"errors"
	"fmt"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// MaxRelayBatchSize bounds the number of events relayed in one run.
const MaxRelayBatchSize = 1000

var ErrRelayOrderEventsCommandIsNotConstructed = errors.New(
	"RelayOrderEventsCommand must be created via NewRelayOrderEventsCommand constructor",
)

// RelayOrderEventsCommand publishes a batch of unpublished outbox events.
//
// Example:
//
//	cmd, _ := NewRelayOrderEventsCommand(100)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOrderEventsToRelay) {
//	    return nil
//	}
type RelayOrderEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOrderEventsCommand(batchSize int) (RelayOrderEventsCommand, error) {
	cmd := RelayOrderEventsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return RelayOrderEventsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RelayOrderEventsCommand) Validate() error {
	return c.guard.Validate(ErrRelayOrderEventsCommandIsNotConstructed)
}

func (c RelayOrderEventsCommand) BatchSize() int {
	return c.batchSize
}

func (c *RelayOrderEventsCommand) setBatchSize(batchSize int) error {
	if batchSize < 1 || batchSize > MaxRelayBatchSize {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"batch size", batchSize, 1, MaxRelayBatchSize,
			fmt.Errorf("%d events cannot be relayed at once", batchSize),
		)
	}

	c.batchSize = batchSize
	return nil
}
