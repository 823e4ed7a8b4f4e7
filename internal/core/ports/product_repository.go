package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the catalog.
// Products are written once, when the catalog is bootstrapped.
type ProductRepository interface {
	// AddAll persists products in a single batch.
	AddAll(ctx context.Context, products []*product.Product) error

	// Get retrieves a product by identifier.
	// Returns an ObjectNotFoundError when no product has this identifier.
	Get(ctx context.Context, id int) (*product.Product, error)

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)
}
