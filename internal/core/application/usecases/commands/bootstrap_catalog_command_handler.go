package commands

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/ports"
)

// BootstrapCatalogCommandHandler loads the product feed into an empty
// catalog. A catalog that already has products is left untouched, so
// running it at every startup is safe.
//
// Example:
//
//	handler := NewBootstrapCatalogCommandHandler(uowFactory, feed, logger)
//	if err := handler.Handle(ctx, NewBootstrapCatalogCommand()); err != nil {
//	    log.Fatalf("catalog bootstrap failed: %v", err)
//	}
type BootstrapCatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
	feed       ports.CatalogFeed
	logger     *slog.Logger
}

func NewBootstrapCatalogCommandHandler(
	uowFactory CatalogUoWFactory,
	feed ports.CatalogFeed,
	logger *slog.Logger,
) BootstrapCatalogCommandHandler {
	return BootstrapCatalogCommandHandler{
		uowFactory: uowFactory,
		feed:       feed,
		logger:     logger.With("component", "catalog_bootstrap"),
	}
}

// Handle counts the stored products and, when there are none, inserts every
// product of the feed in one transaction. A feed failure leaves the catalog
// empty.
func (h BootstrapCatalogCommandHandler) Handle(ctx context.Context, cmd BootstrapCatalogCommand) error {
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

	productRepo := uow.ProductRepository()
	count, err := productRepo.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		h.logger.InfoContext(ctx, "Catalog already populated", "products", count)
		return nil
	}

	h.logger.InfoContext(ctx, "Catalog is empty, fetching product feed")
	products, err := h.feed.FetchProducts(ctx)
	if err != nil {
		return err
	}

	if err = productRepo.AddAll(ctx, products); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Catalog populated from feed", "products", len(products))
	return nil
}
