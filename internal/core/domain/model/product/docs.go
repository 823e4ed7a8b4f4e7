// Package product provides the Product entity of the catalog.
//
// Products are reference data: they are created once when the catalog is
// bootstrapped from the remote feed and are never modified afterwards. The
// order aggregate reads a product's price, weight and stock flag when an
// order is created.
package product
