package ordereventrepo

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderEventRepository implements OrderEventRepository using GORM.
type GormOrderEventRepository struct {
	db *gorm.DB
}

// NewGormOrderEventRepository creates a new GORM outbox repository.
func NewGormOrderEventRepository(db *gorm.DB) *GormOrderEventRepository {
	return &GormOrderEventRepository{db: db}
}

// Add stores events as unpublished.
func (r *GormOrderEventRepository) Add(ctx context.Context, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OrderEventDTO, 0, len(events))
	for _, e := range events {
		dto, err := fromDomain(e)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished locks up to limit unpublished rows, oldest first. Rows
// already locked by another relay are skipped.
func (r *GormOrderEventRepository) GetUnpublished(ctx context.Context, limit int) ([]order.Event, error) {
	var dtos []OrderEventDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]order.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}

// MarkPublished stamps the given events with the current time.
func (r *GormOrderEventRepository) MarkPublished(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Model(&OrderEventDTO{}).
		Where("id IN ?", rawIDs).
		Update("published_at", time.Now().UTC()).Error
}
