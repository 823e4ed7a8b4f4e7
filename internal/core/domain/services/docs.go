// Package services provides domain services of the order desk that do not
// belong to a single aggregate.
//
// The package includes:
//   - Pricing: line total, weight-tiered shipping fee, province tax and the
//     whole-unit amount sent to the payment gateway
//
// Pricing is a stateless value; the order aggregate receives it through its
// own Pricing interface so the aggregate can be tested with any rate table.
package services
