// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// emptyPayload is the stored form of a card or transaction that is not set yet.
const emptyPayload = "{}"

// OrderDTO represents the database structure for persisting order aggregates.
// Amounts are stored rounded to cents; gateway payloads are stored as jsonb
// and decoded on load.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID     int             `gorm:"not null;index"`
	Quantity      int             `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPriceTax decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Email         *string
	Shipping      ShippingDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	Status        int         `gorm:"not null;index"`
	Paid          bool        `gorm:"not null;default:false"`
	CreditCard    string      `gorm:"type:jsonb;not null;default:'{}'"`
	Transaction   string      `gorm:"type:jsonb;not null;default:'{}'"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ShippingDTO represents the embedded shipping address; every column is NULL
// until customer info is set.
type ShippingDTO struct {
	Country    *string
	Address    *string
	PostalCode *string
	City       *string
	Province   *string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) (OrderDTO, error) {
	creditCard, err := encodePayload(o.CreditCard())
	if err != nil {
		return OrderDTO{}, err
	}

	transaction, err := encodePayload(o.Transaction())
	if err != nil {
		return OrderDTO{}, err
	}

	dto := OrderDTO{
		ID:            o.ID().Bytes(),
		ProductID:     o.ProductID(),
		Quantity:      o.Quantity(),
		UnitPrice:     o.UnitPrice().RoundToCents().Amount(),
		TotalPrice:    o.LineTotal().RoundToCents().Amount(),
		TotalPriceTax: o.TaxTotal().RoundToCents().Amount(),
		ShippingPrice: o.ShippingFee().RoundToCents().Amount(),
		Status:        int(o.Status()),
		Paid:          o.IsPaid(),
		CreditCard:    creditCard,
		Transaction:   transaction,
	}

	if email := o.Email(); email != "" {
		dto.Email = &email
	}

	if addr := o.ShippingAddress(); addr != nil {
		country, address, postalCode, city, province :=
			addr.Country(), addr.Address(), addr.PostalCode(), addr.City(), addr.Province()
		dto.Shipping = ShippingDTO{
			Country:    &country,
			Address:    &address,
			PostalCode: &postalCode,
			City:       &city,
			Province:   &province,
		}
	}

	return dto, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which re-checks the
// stored state.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	lineTotal, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}
	taxTotal, err := kernel.NewMoney(dto.TotalPriceTax)
	if err != nil {
		return nil, err
	}
	shippingFee, err := kernel.NewMoney(dto.ShippingPrice)
	if err != nil {
		return nil, err
	}

	creditCard, err := order.DecodePaymentRecord("credit_card", []byte(dto.CreditCard))
	if err != nil {
		return nil, err
	}
	transaction, err := order.DecodePaymentRecord("transaction", []byte(dto.Transaction))
	if err != nil {
		return nil, err
	}

	var email string
	if dto.Email != nil {
		email = *dto.Email
	}

	var shippingAddress *order.ShippingAddress
	if dto.Shipping.Country != nil {
		addr, addrErr := order.NewShippingAddress(
			deref(dto.Shipping.Country),
			deref(dto.Shipping.Address),
			deref(dto.Shipping.PostalCode),
			deref(dto.Shipping.City),
			deref(dto.Shipping.Province),
		)
		if addrErr != nil {
			return nil, addrErr
		}
		shippingAddress = &addr
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		ProductID:       dto.ProductID,
		Quantity:        dto.Quantity,
		UnitPrice:       unitPrice,
		LineTotal:       lineTotal,
		ShippingFee:     shippingFee,
		TaxTotal:        taxTotal,
		Email:           email,
		ShippingAddress: shippingAddress,
		Status:          order.Status(dto.Status),
		CreditCard:      creditCard,
		Transaction:     transaction,
	})
}

func encodePayload(record order.PaymentRecord) (string, error) {
	if record.IsEmpty() {
		return emptyPayload, nil
	}

	raw, err := record.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
