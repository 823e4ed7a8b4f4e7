package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Looks up the product, prices the order and stores it in Created status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewPricing())
//	orderID := kernel.NewUUID()
//	cmd, _ := NewCreateOrderCommand(orderID, 1, 3)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// redirect to /order/<orderID>
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricing    order.Pricing
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, pricing order.Pricing) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the order creation command.
// An unknown product is reported like an out-of-stock one, as an
// ObjectIsNotAvailableError. Nothing is written on failure.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewObjectIsNotAvailableErrorWithCause("product", cmd.ProductID(), err)
	}
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), p, cmd.Quantity(), h.pricing)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
