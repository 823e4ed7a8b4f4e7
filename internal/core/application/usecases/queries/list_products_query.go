// Package queries contains read operations of the order desk. Query handlers
// read the database directly and return flat response structs.
package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves the whole catalog, in-stock or not.
//
// Example:
//
//	handler := NewListProductsQueryHandler(db)
//	products, err := handler.Handle(ctx, NewListProductsQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a parameterless catalog query.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ListProductsQueryResponse is one catalog entry.
type ListProductsQueryResponse struct {
	ID          int
	Name        string
	Description string
	Price       kernel.Money
	Weight      int
	InStock     bool
	Image       string
}
