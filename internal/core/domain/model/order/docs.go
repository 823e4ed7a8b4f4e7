// Package order contains the order aggregate and its lifecycle.
//
// An order buys a quantity of one catalog product. It is priced when it is
// created, then receives the customer's email and shipping address (which
// selects the tax rate), and is finally paid through the payment gateway.
//
// The package includes:
//   - Order: the aggregate root with its pricing invariants and transitions
//   - Status: the Created → Informed → Paid state machine
//   - ShippingAddress: the five-part destination value
//   - PaymentRecord: opaque card and transaction payloads from the gateway
//   - Event: changes recorded for the order events outbox
//
// Pricing rules are supplied through the Pricing interface, implemented by
// the domain services package.
package order
