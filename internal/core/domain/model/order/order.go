package order

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factories.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsAlreadyPaid is returned by every transition attempted on a paid order.
	ErrOrderIsAlreadyPaid = errors.New("order is already paid")
)

// MaxQuantity bounds the quantity of a single order.
const MaxQuantity = math.MaxInt32

// Pricing computes the amounts stored on an order. It is implemented by
// services.Pricing.
type Pricing interface {
	LineTotal(unitPrice kernel.Money, quantity int) kernel.Money
	ShippingFee(totalWeightGrams int) kernel.Money
	Tax(lineTotal kernel.Money, province string) (kernel.Money, error)
	AmountCharged(taxTotal kernel.Money, shippingFee kernel.Money) int64
}

// Order is the aggregate root of a single-product purchase. It is priced on
// creation, receives customer info, and is finally paid.
//
// Order follows these invariants:
//   - quantity is at least 1
//   - lineTotal equals unitPrice × quantity
//   - shippingFee is fixed at creation
//   - taxTotal is lineTotal taxed at the province rate, or the default rate
//     while no address is known
//   - a paid order has customer info and a non-empty transaction
//   - a paid order accepts no further transition
type Order struct {
	id        kernel.UUID
	productID int
	quantity  int

	unitPrice   kernel.Money
	lineTotal   kernel.Money
	shippingFee kernel.Money
	taxTotal    kernel.Money

	email           string
	shippingAddress *ShippingAddress

	status      Status
	creditCard  PaymentRecord
	transaction PaymentRecord

	events []Event

	isConstructed bool
}

// NewOrder prices a new order for quantity units of p.
//
// Quantity is checked before product availability, so a request that is both
// malformed and out of stock is reported as malformed.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), p, 3, services.NewPricing())
//	if err != nil {
//	    // ValueIsOutOfRangeError or ObjectIsNotAvailableError
//	}
func NewOrder(id kernel.UUID, p *product.Product, quantity int, pricing Pricing) (*Order, error) {
	o := &Order{
		status:        Created,
		creditCard:    EmptyPaymentRecord(),
		transaction:   EmptyPaymentRecord(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	if p == nil {
		return nil, errs.NewValueIsRequiredError("product")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.EnsureAvailable(); err != nil {
		return nil, err
	}

	o.productID = p.ID()
	o.unitPrice = p.Price()
	o.lineTotal = pricing.LineTotal(p.Price(), quantity)
	o.shippingFee = pricing.ShippingFee(p.ShippedWeight(quantity))

	taxTotal, err := pricing.Tax(o.lineTotal, "")
	if err != nil {
		return nil, err
	}
	o.taxTotal = taxTotal

	o.raise(EventOrderCreated)
	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID              kernel.UUID
	ProductID       int
	Quantity        int
	UnitPrice       kernel.Money
	LineTotal       kernel.Money
	ShippingFee     kernel.Money
	TaxTotal        kernel.Money
	Email           string
	ShippingAddress *ShippingAddress
	Status          Status
	CreditCard      PaymentRecord
	Transaction     PaymentRecord
}

// RestoreOrder rebuilds an order loaded from storage and checks that the
// stored state is consistent. It records no events.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		email:           s.Email,
		shippingAddress: s.ShippingAddress,
		creditCard:      s.CreditCard,
		transaction:     s.Transaction,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setProductID(s.ProductID),
		o.setQuantity(s.Quantity),
		o.setAmounts(s.UnitPrice, s.LineTotal, s.ShippingFee, s.TaxTotal),
		o.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	if err := o.status.ValidateCanHaveCustomerInfo(o.HasCustomerInfo()); err != nil {
		return nil, err
	}
	if o.status.IsPaid() && o.transaction.IsEmpty() {
		return nil, errs.NewDataIsCorruptedErrorWithCause("transaction", errors.New("paid order has no transaction"))
	}

	return o, nil
}

// Validate ensures the Order instance was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ProductID() int {
	return o.productID
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) UnitPrice() kernel.Money {
	return o.unitPrice
}

// LineTotal returns unitPrice × quantity, exact.
func (o *Order) LineTotal() kernel.Money {
	return o.lineTotal
}

func (o *Order) ShippingFee() kernel.Money {
	return o.shippingFee
}

// TaxTotal returns the line total including tax, rounded to cents.
func (o *Order) TaxTotal() kernel.Money {
	return o.taxTotal
}

// Email returns the customer email, empty until customer info is set.
func (o *Order) Email() string {
	return o.email
}

// ShippingAddress returns nil until customer info is set.
func (o *Order) ShippingAddress() *ShippingAddress {
	if o.shippingAddress == nil {
		return nil
	}
	addr := *o.shippingAddress
	return &addr
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) IsPaid() bool {
	return o.status.IsPaid()
}

func (o *Order) CreditCard() PaymentRecord {
	return o.creditCard
}

func (o *Order) Transaction() PaymentRecord {
	return o.transaction
}

// HasCustomerInfo reports whether both email and shipping address are set.
func (o *Order) HasCustomerInfo() bool {
	return o.email != "" && o.shippingAddress != nil
}

// SetCustomerInfo attaches the customer email and shipping address and
// recomputes the tax with the province rate. Resubmission before payment
// overwrites the previous values.
//
// Returns ErrOrderIsAlreadyPaid for paid orders, ValueIsRequiredError for a
// blank email and ValueIsInvalidError for a province without a tax rate. The
// order is unchanged on error.
func (o *Order) SetCustomerInfo(email string, address ShippingAddress, pricing Pricing) error {
	newStatus, err := o.status.SetCustomerInfo()
	if err != nil {
		return err
	}

	if err = errors.Join(
		requireText("email", email),
		address.Validate(),
	); err != nil {
		return err
	}

	taxTotal, err := pricing.Tax(o.lineTotal, address.Province())
	if err != nil {
		return err
	}

	o.email = email
	o.shippingAddress = &address
	o.taxTotal = taxTotal
	o.status = newStatus

	o.raise(EventOrderCustomerInfoSet)
	return nil
}

// EnsurePayable returns an error when the order cannot be charged: a
// ValueIsRequiredError when customer info is missing, ErrOrderIsAlreadyPaid
// when it was paid already.
func (o *Order) EnsurePayable() error {
	return o.status.ValidatePay()
}

// AmountCharged returns the whole-unit amount sent to the payment gateway.
func (o *Order) AmountCharged(pricing Pricing) int64 {
	return pricing.AmountCharged(o.taxTotal, o.shippingFee)
}

// MarkPaid stores the gateway records and moves the order to Paid.
func (o *Order) MarkPaid(creditCard PaymentRecord, transaction PaymentRecord) error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	if transaction.IsEmpty() {
		return errs.NewValueIsRequiredError("transaction")
	}

	o.creditCard = creditCard
	o.transaction = transaction
	o.status = newStatus

	o.raise(EventOrderPaid)
	return nil
}

// DomainEvents returns the events recorded since the order was built or the
// events were last cleared.
func (o *Order) DomainEvents() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

// ClearDomainEvents forgets recorded events once they are stored.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(name EventName) {
	attributes := map[string]string{
		"product_id":   strconv.Itoa(o.productID),
		"quantity":     strconv.Itoa(o.quantity),
		"total_price":  o.lineTotal.RoundToCents().String(),
		"shipping_fee": o.shippingFee.String(),
		"tax_total":    o.taxTotal.String(),
		"status":       strings.ToLower(o.status.String()),
	}
	if o.email != "" {
		attributes["email"] = o.email
	}
	if o.shippingAddress != nil {
		attributes["province"] = o.shippingAddress.Province()
	}

	o.events = append(o.events, newEvent(o.id, name, attributes))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProductID(productID int) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product_id is invalid", fmt.Errorf("%d is not greater than 0", productID))
	}
	o.productID = productID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setAmounts(unitPrice, lineTotal, shippingFee, taxTotal kernel.Money) error {
	if err := errors.Join(
		unitPrice.Validate(),
		lineTotal.Validate(),
		shippingFee.Validate(),
		taxTotal.Validate(),
	); err != nil {
		return err
	}

	o.unitPrice = unitPrice
	o.lineTotal = lineTotal
	o.shippingFee = shippingFee
	o.taxTotal = taxTotal
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
