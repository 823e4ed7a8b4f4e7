package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full view of one order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full view of an order. Amounts are rounded to
// cents. Email and ShippingInformation are nil until customer info is set.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	ProductID           int
	Quantity            int
	TotalPrice          kernel.Money
	TotalPriceTax       kernel.Money
	ShippingPrice       kernel.Money
	Email               *string
	ShippingInformation *ShippingInformationResponse
	Paid                bool
	CreditCard          order.PaymentRecord
	Transaction         order.PaymentRecord
}

// ShippingInformationResponse is the destination of an informed order.
type ShippingInformationResponse struct {
	Country    string
	Address    string
	PostalCode string
	City       string
	Province   string
}
