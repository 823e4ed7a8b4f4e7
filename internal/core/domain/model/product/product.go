package product

import (
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product bypassed NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry.
//
// Invariants:
//   - id is a positive integer
//   - name is not blank
//   - price is a constructed, non-negative Money
//   - weight (grams) is not negative
type Product struct {
	id          int
	name        string
	description string
	price       kernel.Money
	weight      int
	inStock     bool
	image       string

	isConstructed bool
}

// NewProduct validates and builds a product. All violations are reported
// together.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("15.79")
//	p, err := product.NewProduct(10, "Lemon and salt", "Rosemary, lemon and salt on the table", price, 299, true, "9.jpg")
func NewProduct(
	id int,
	name string,
	description string,
	price kernel.Money,
	weight int,
	inStock bool,
	image string,
) (*Product, error) {
	p := &Product{
		description:   description,
		inStock:       inStock,
		image:         image,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the product was built through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() int {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() kernel.Money {
	return p.price
}

// Weight returns the unit weight in grams.
func (p *Product) Weight() int {
	return p.weight
}

func (p *Product) InStock() bool {
	return p.inStock
}

// Image returns the image file name, empty when the feed had none.
func (p *Product) Image() string {
	return p.image
}

// EnsureAvailable returns an ObjectIsNotAvailableError when the product is
// out of stock.
func (p *Product) EnsureAvailable() error {
	if !p.inStock {
		return errs.NewObjectIsNotAvailableErrorWithCause("product", p.id, errors.New("product is out of stock"))
	}
	return nil
}

// ShippedWeight returns the total weight in grams of quantity units.
func (p *Product) ShippedWeight(quantity int) int {
	return p.weight * quantity
}

func (p *Product) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setWeight(weight int) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%d is negative", weight))
	}
	p.weight = weight
	return nil
}
