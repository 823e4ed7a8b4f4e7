package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrSetCustomerInfoCommandIsNotConstructed = errors.New(
	"SetCustomerInfoCommand must be created via NewSetCustomerInfoCommand constructor",
)

// ShippingInformation is the raw destination submitted by the customer. Its
// parts are validated against the order once the order is loaded, so an
// unknown order is reported before incomplete fields.
type ShippingInformation struct {
	Country    string
	Address    string
	PostalCode string
	City       string
	Province   string
}

// SetCustomerInfoCommand attaches the customer email and shipping address to
// an unpaid order.
//
// Example:
//
//	cmd, err := NewSetCustomerInfoCommand(orderID, "jgnault@uqac.ca", ShippingInformation{
//	    Country:    "Canada",
//	    Address:    "201, rue Président-Kennedy",
//	    PostalCode: "G7X 3Y7",
//	    City:       "Chicoutimi",
//	    Province:   "QC",
//	})
type SetCustomerInfoCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	email    string
	shipping ShippingInformation

	guard guard.ConstructorGuard
}

// NewSetCustomerInfoCommand creates the command. Only the order identifier is
// checked here.
func NewSetCustomerInfoCommand(
	orderID kernel.UUID,
	email string,
	shipping ShippingInformation,
) (SetCustomerInfoCommand, error) {
	cmd := SetCustomerInfoCommand{
		email:    email,
		shipping: shipping,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SetCustomerInfoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCustomerInfoCommand) Validate() error {
	return c.guard.Validate(ErrSetCustomerInfoCommandIsNotConstructed)
}

func (c SetCustomerInfoCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetCustomerInfoCommand) Email() string {
	return c.email
}

func (c SetCustomerInfoCommand) Shipping() ShippingInformation {
	return c.shipping
}

func (c *SetCustomerInfoCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
