package order

import (
	"errors"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// ErrShippingAddressIsNotConstructed is returned when validating a zero-value
// ShippingAddress.
var ErrShippingAddressIsNotConstructed = errs.NewValueIsRequiredError("shipping_information")

// ShippingAddress is the destination of an order. All five parts are
// required; the province code is checked against the tax table when the
// address is attached to an order.
type ShippingAddress struct {
	country    string
	address    string
	postalCode string
	city       string
	province   string

	isConstructed bool
}

// NewShippingAddress validates that every part is present. Every missing
// part is reported, joined.
//
// Example:
//
//	addr, err := order.NewShippingAddress("Canada", "201, rue Président-Kennedy", "G7X 3Y7", "Chicoutimi", "QC")
func NewShippingAddress(country, address, postalCode, city, province string) (ShippingAddress, error) {
	if err := errors.Join(
		requireText("country", country),
		requireText("address", address),
		requireText("postal_code", postalCode),
		requireText("city", city),
		requireText("province", province),
	); err != nil {
		return ShippingAddress{}, err
	}

	return ShippingAddress{
		country:       country,
		address:       address,
		postalCode:    postalCode,
		city:          city,
		province:      province,
		isConstructed: true,
	}, nil
}

func (a ShippingAddress) Validate() error {
	if !a.isConstructed {
		return ErrShippingAddressIsNotConstructed
	}
	return nil
}

func (a ShippingAddress) Country() string {
	return a.country
}

func (a ShippingAddress) Address() string {
	return a.address
}

func (a ShippingAddress) PostalCode() string {
	return a.postalCode
}

func (a ShippingAddress) City() string {
	return a.city
}

// Province returns the province code, e.g. "QC".
func (a ShippingAddress) Province() string {
	return a.province
}

// IsEqual compares all parts.
func (a ShippingAddress) IsEqual(other ShippingAddress) bool {
	return a == other
}

func requireText(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
