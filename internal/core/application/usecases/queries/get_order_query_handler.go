package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order views.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order view, an ObjectNotFoundError for an unknown id,
// or a DataIsCorruptedError when a stored card or transaction payload no
// longer decodes.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			total_price,
			total_price_tax,
			shipping_price,
			email,
			shipping_country,
			shipping_address,
			shipping_postal_code,
			shipping_city,
			shipping_province,
			paid,
			credit_card,
			"transaction"
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id            uuid.UUID
		resp          GetOrderQueryResponse
		totalPrice    decimal.Decimal
		totalPriceTax decimal.Decimal
		shippingPrice decimal.Decimal
		email         sql.NullString
		country       sql.NullString
		address       sql.NullString
		postalCode    sql.NullString
		city          sql.NullString
		province      sql.NullString
		creditCard    sql.NullString
		transaction   sql.NullString
	)

	err := row.Scan(
		&id,
		&resp.ProductID,
		&resp.Quantity,
		&totalPrice,
		&totalPriceTax,
		&shippingPrice,
		&email,
		&country,
		&address,
		&postalCode,
		&city,
		&province,
		&resp.Paid,
		&creditCard,
		&transaction,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.TotalPrice, err = kernel.NewMoney(totalPrice); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.TotalPriceTax, err = kernel.NewMoney(totalPriceTax); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ShippingPrice, err = kernel.NewMoney(shippingPrice); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if email.Valid {
		resp.Email = &email.String
	}

	if country.Valid {
		resp.ShippingInformation = &ShippingInformationResponse{
			Country:    country.String,
			Address:    address.String,
			PostalCode: postalCode.String,
			City:       city.String,
			Province:   province.String,
		}
	}

	if resp.CreditCard, err = order.DecodePaymentRecord("credit_card", []byte(creditCard.String)); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Transaction, err = order.DecodePaymentRecord("transaction", []byte(transaction.String)); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
