package commands

import (
	"errors"
	"math"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to buy quantity units of a catalog product.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, 1, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewPricing())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID int
	quantity  int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The product reference must be a positive id and the quantity at least 1;
// both are reported as out of range otherwise.
func NewCreateOrderCommand(orderID kernel.UUID, productID int, quantity int) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setProductID(productID),
		orderCommand.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ProductID() int {
	return c.productID
}

func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID int) error {
	if productID <= 0 {
		return errs.NewValueIsOutOfRangeError("product_id", productID, 1, math.MaxInt32)
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 || quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, order.MaxQuantity)
	}

	c.quantity = quantity
	return nil
}
