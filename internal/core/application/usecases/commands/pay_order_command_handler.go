package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// DefaultPaymentTimeout bounds a gateway call when no timeout is configured.
const DefaultPaymentTimeout = 10 * time.Second

// PayOrderCommandHandler charges an order through the payment gateway.
//
// The order row stays locked for the duration of the gateway call, so two
// payments of one order cannot both reach the gateway. Errors are reported in
// this order:
//   - ObjectNotFoundError for an unknown order
//   - ValueIsRequiredError when customer info is missing
//   - order.ErrOrderIsAlreadyPaid for a paid order
//   - ValueIsRequiredError for incomplete card data
//   - *ports.PaymentRejectedError when the gateway refuses the card
//   - ExternalServiceError when the gateway fails or times out
//
// The order is unchanged unless the gateway accepted the charge and the
// update committed.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	pricing    order.Pricing
	timeout    time.Duration
}

// NewPayOrderCommandHandler creates the handler. A non-positive timeout
// selects DefaultPaymentTimeout.
func NewPayOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	pricing order.Pricing,
	timeout time.Duration,
) PayOrderCommandHandler {
	if timeout <= 0 {
		timeout = DefaultPaymentTimeout
	}

	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		pricing:    pricing,
		timeout:    timeout,
	}
}

func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	if err = o.EnsurePayable(); err != nil {
		return err
	}

	card := cmd.CreditCard()
	if err = validateCreditCard(card); err != nil {
		return err
	}

	gatewayCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	authorization, err := h.gateway.Authorize(gatewayCtx, card, o.AmountCharged(h.pricing))
	if err != nil {
		return err
	}

	if err = o.MarkPaid(authorization.CreditCard, authorization.Transaction); err != nil {
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

func validateCreditCard(card ports.CreditCard) error {
	var errList []error

	if strings.TrimSpace(card.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("credit_card.name"))
	}
	if strings.TrimSpace(card.Number) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("credit_card.number"))
	}
	if card.ExpirationYear <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("credit_card.expiration_year"))
	}
	if card.ExpirationMonth <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("credit_card.expiration_month"))
	}
	if strings.TrimSpace(card.CVV) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("credit_card.cvv"))
	}

	return errors.Join(errList...)
}
