package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand charges an order to a credit card.
//
// The card is checked by the handler after the order, so an order without
// customer info is reported as such whatever the card holds.
//
// Example:
//
//	cmd, err := NewPayOrderCommand(orderID, ports.CreditCard{
//	    Name:            "John Doe",
//	    Number:          "4242 4242 4242 4242",
//	    ExpirationYear:  2030,
//	    ExpirationMonth: 9,
//	    CVV:             "123",
//	})
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	card    ports.CreditCard

	guard guard.ConstructorGuard
}

func NewPayOrderCommand(orderID kernel.UUID, card ports.CreditCard) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		card:  card,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PayOrderCommand) CreditCard() ports.CreditCard {
	return c.card
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
