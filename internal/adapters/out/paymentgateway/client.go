// Package paymentgateway charges credit cards through the remote payment
// service. Each authorization is a single POST that is never retried.
package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

const (
	serviceName = "payment-gateway"

	// maxResponseSize caps how much of a gateway answer is read.
	maxResponseSize = 1 << 20
)

type creditCardRequest struct {
	Name            string `json:"name"`
	Number          string `json:"number"`
	ExpirationYear  int    `json:"expiration_year"`
	ExpirationMonth int    `json:"expiration_month"`
	CVV             string `json:"cvv"`
}

type authorizeRequest struct {
	CreditCard    creditCardRequest `json:"credit_card"`
	AmountCharged int64             `json:"amount_charged"`
}

type authorizeResponse struct {
	CreditCard  json.RawMessage `json:"credit_card"`
	Transaction json.RawMessage `json:"transaction"`
}

// Client implements ports.PaymentGateway over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a gateway client posting to url. The client timeout
// bounds the whole exchange; callers add their own deadline via ctx.
func NewClient(url string, timeout time.Duration) *Client {
	return NewClientWithHTTPClient(url, &http.Client{Timeout: timeout})
}

// NewClientWithHTTPClient creates a gateway client on top of httpClient.
func NewClientWithHTTPClient(url string, httpClient *http.Client) *Client {
	return &Client{url: url, httpClient: httpClient}
}

// Authorize charges amountCharged on card.
//
// A 200 answer yields the card and transaction records echoed by the
// gateway. A 422 answer is returned as *ports.PaymentRejectedError carrying
// the status and body unchanged. Everything else, timeouts included, is an
// ExternalServiceError.
func (c *Client) Authorize(
	ctx context.Context,
	card ports.CreditCard,
	amountCharged int64,
) (ports.PaymentAuthorization, error) {
	body, err := json.Marshal(authorizeRequest{
		CreditCard: creditCardRequest{
			Name:            card.Name,
			Number:          card.Number,
			ExpirationYear:  card.ExpirationYear,
			ExpirationMonth: card.ExpirationMonth,
			CVV:             card.CVV,
		},
		AmountCharged: amountCharged,
	})
	if err != nil {
		return ports.PaymentAuthorization{}, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return ports.PaymentAuthorization{}, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.PaymentAuthorization{}, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return ports.PaymentAuthorization{}, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeAuthorization(respBody)
	case http.StatusUnprocessableEntity:
		return ports.PaymentAuthorization{}, &ports.PaymentRejectedError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	default:
		return ports.PaymentAuthorization{}, errs.NewExternalServiceErrorWithCause(serviceName,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
}

func decodeAuthorization(body []byte) (ports.PaymentAuthorization, error) {
	var payload authorizeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return ports.PaymentAuthorization{}, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}

	creditCard, err := order.DecodePaymentRecord("credit_card", payload.CreditCard)
	if err != nil {
		return ports.PaymentAuthorization{}, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}

	transaction, err := order.DecodePaymentRecord("transaction", payload.Transaction)
	if err != nil {
		return ports.PaymentAuthorization{}, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	if transaction.IsEmpty() {
		return ports.PaymentAuthorization{}, errs.NewExternalServiceErrorWithCause(serviceName,
			errs.NewValueIsRequiredError("transaction"))
	}

	return ports.PaymentAuthorization{
		CreditCard:  creditCard,
		Transaction: transaction,
	}, nil
}
