package productrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// insertBatchSize bounds the rows sent in one INSERT during bootstrap.
const insertBatchSize = 100

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// AddAll saves the whole catalog.
func (r *GormProductRepository) AddAll(ctx context.Context, products []*product.Product) error {
	if len(products) == 0 {
		return nil
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(p))
	}

	return r.db.WithContext(ctx).CreateInBatches(&dtos, insertBatchSize).Error
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id int) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Count returns the number of catalog rows.
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
