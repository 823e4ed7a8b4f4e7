package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/product"
)

// CatalogFeed fetches the vendor's product list from the remote feed.
type CatalogFeed interface {
	// FetchProducts returns every product of the feed. A product missing a
	// required field fails the whole fetch.
	FetchProducts(ctx context.Context) ([]*product.Product, error)
}
