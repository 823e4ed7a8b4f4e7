// Package productrepo persists the read-only product catalog.
package productrepo

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents a catalog row. Identifiers come from the catalog
// feed, so the primary key is not generated.
type ProductDTO struct {
	ID          int             `gorm:"primaryKey;autoIncrement:false"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Weight      int             `gorm:"not null"`
	InStock     bool            `gorm:"not null"`
	Image       string
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().RoundToCents().Amount(),
		Weight:      p.Weight(),
		InStock:     p.InStock(),
		Image:       p.Image(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(dto.ID, dto.Name, dto.Description, price, dto.Weight, dto.InStock, dto.Image)
}
