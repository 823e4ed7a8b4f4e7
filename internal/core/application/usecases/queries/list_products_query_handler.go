package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListProductsQueryHandler reads the catalog from the database.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for catalog queries.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle returns every product ordered by id. An empty catalog yields an
// empty, non-nil slice.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ListProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			weight,
			in_stock,
			image
		FROM products
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productResp ListProductsQueryResponse
		var price decimal.Decimal

		err = rows.Scan(
			&productResp.ID,
			&productResp.Name,
			&productResp.Description,
			&price,
			&productResp.Weight,
			&productResp.InStock,
			&productResp.Image,
		)
		if err != nil {
			return nil, err
		}

		productResp.Price, err = kernel.NewMoney(price)
		if err != nil {
			return nil, err
		}

		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
