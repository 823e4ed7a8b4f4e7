package ports

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
)

// CreditCard is the card data forwarded to the payment gateway. The order
// desk never stores it; the gateway returns a masked record instead.
type CreditCard struct {
	Name            string
	Number          string
	ExpirationYear  int
	ExpirationMonth int
	CVV             string
}

// PaymentAuthorization holds the records returned by an accepted charge.
type PaymentAuthorization struct {
	CreditCard  order.PaymentRecord
	Transaction order.PaymentRecord
}

// PaymentRejectedError is a charge the gateway refused as invalid. The
// status code and body are forwarded to the client unchanged.
type PaymentRejectedError struct {
	StatusCode int
	Body       []byte
}

func (e *PaymentRejectedError) Error() string {
	return fmt.Sprintf("payment rejected with status %d: %s", e.StatusCode, e.Body)
}

// PaymentGateway charges a credit card.
type PaymentGateway interface {
	// Authorize sends a single charge request. It returns a
	// *PaymentRejectedError when the gateway refuses the card and an
	// ExternalServiceError for any other failure. It never retries.
	Authorize(ctx context.Context, card CreditCard, amountCharged int64) (PaymentAuthorization, error)
}
