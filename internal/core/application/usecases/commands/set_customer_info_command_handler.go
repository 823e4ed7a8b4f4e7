package commands

import (
	"context"
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// SetCustomerInfoCommandHandler records the customer email and shipping
// address of an order and recomputes its tax with the province rate.
//
// Errors are reported in this order:
//   - ObjectNotFoundError for an unknown order
//   - order.ErrOrderIsAlreadyPaid for a paid order
//   - ValueIsRequiredError for blank fields, ValueIsInvalidError for a
//     province without a tax rate
type SetCustomerInfoCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    order.Pricing
}

func NewSetCustomerInfoCommandHandler(uowFactory OrderUoWFactory, pricing order.Pricing) SetCustomerInfoCommandHandler {
	return SetCustomerInfoCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle loads the order with a row lock, applies the customer info and
// persists it in one transaction.
func (h *SetCustomerInfoCommandHandler) Handle(ctx context.Context, cmd SetCustomerInfoCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Status().ValidateSetCustomerInfo(); err != nil {
		return err
	}

	shipping := cmd.Shipping()
	address, addressErr := order.NewShippingAddress(
		shipping.Country,
		shipping.Address,
		shipping.PostalCode,
		shipping.City,
		shipping.Province,
	)
	if addressErr != nil {
		if strings.TrimSpace(cmd.Email()) == "" {
			return errors.Join(errs.NewValueIsRequiredError("email"), addressErr)
		}
		return addressErr
	}

	if err = o.SetCustomerInfo(cmd.Email(), address, h.pricing); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
