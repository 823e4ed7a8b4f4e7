package services

import (
	"fmt"
	"sort"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// LightParcelMaxWeight is the heaviest total weight (grams, inclusive)
	// shipped at the light rate.
	LightParcelMaxWeight = 500
	// HeavyParcelMinWeight is the lightest total weight (grams, inclusive)
	// shipped at the heavy rate.
	HeavyParcelMinWeight = 2000
)

var (
	lightParcelFee  = decimal.RequireFromString("5.00")
	mediumParcelFee = decimal.RequireFromString("10.00")
	heavyParcelFee  = decimal.RequireFromString("25.00")

	// defaultTaxRate applies while the shipping province is unknown.
	defaultTaxRate = decimal.RequireFromString("0.15")

	provinceTaxRates = map[string]decimal.Decimal{
		"QC": decimal.RequireFromString("0.15"),
		"ON": decimal.RequireFromString("0.13"),
		"AB": decimal.RequireFromString("0.05"),
		"BC": decimal.RequireFromString("0.12"),
		"NS": decimal.RequireFromString("0.14"),
	}
)

// Pricing computes every amount an order stores.
//
// Rounding rules:
//   - LineTotal is exact; callers round it to cents when persisting
//   - Tax is rounded to cents
//   - AmountCharged is rounded to a whole unit (half to even)
//
// Example:
//
//	pricing := services.NewPricing()
//	price, _ := kernel.NewMoneyFromString("10.00")
//	lineTotal := pricing.LineTotal(price, 3)      // 30.00
//	shipping := pricing.ShippingFee(300)          // 5.00
//	tax, _ := pricing.Tax(lineTotal, "")          // 34.50
//	charged := pricing.AmountCharged(tax, shipping) // 40
type Pricing struct{}

// NewPricing returns the pricing service with the built-in rate tables.
func NewPricing() Pricing {
	return Pricing{}
}

// LineTotal returns unitPrice × quantity without rounding.
func (Pricing) LineTotal(unitPrice kernel.Money, quantity int) kernel.Money {
	return unitPrice.Multiply(quantity)
}

// ShippingFee returns the flat fee of the weight tier:
//
//	weight ≤ 500g          → 5.00
//	500g < weight < 2000g  → 10.00
//	weight ≥ 2000g         → 25.00
func (Pricing) ShippingFee(totalWeightGrams int) kernel.Money {
	fee := mediumParcelFee
	switch {
	case totalWeightGrams <= LightParcelMaxWeight:
		fee = lightParcelFee
	case totalWeightGrams >= HeavyParcelMinWeight:
		fee = heavyParcelFee
	}

	money, _ := kernel.NewMoney(fee)
	return money
}

// Tax returns round(lineTotal × (1 + rate), 2). An empty province selects
// the default rate; an unsupported province is a ValueIsInvalidError.
func (p Pricing) Tax(lineTotal kernel.Money, province string) (kernel.Money, error) {
	rate := defaultTaxRate
	if province != "" {
		provinceRate, ok := provinceTaxRates[province]
		if !ok {
			return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
				"province",
				fmt.Errorf("province %q is not supported for tax calculation, expected one of %s",
					province, strings.Join(p.SupportedProvinces(), ", ")),
			)
		}
		rate = provinceRate
	}

	return lineTotal.Inflate(rate).RoundToCents(), nil
}

// AmountCharged returns taxTotal + shippingFee rounded to a whole unit, the
// integer amount the payment gateway expects.
func (Pricing) AmountCharged(taxTotal kernel.Money, shippingFee kernel.Money) int64 {
	return taxTotal.Add(shippingFee).RoundToUnit()
}

// SupportedProvinces lists the province codes with a tax rate, sorted.
func (Pricing) SupportedProvinces() []string {
	codes := make([]string, 0, len(provinceTaxRates))
	for code := range provinceTaxRates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
