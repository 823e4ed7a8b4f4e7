// Package ordereventrepo stores order domain events in the order_events
// outbox table until the relay job has published them.
package ordereventrepo

import (
	"encoding/json"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderEventDTO is one outbox row. PublishedAt stays NULL until the event
// reaches the event stream.
type OrderEventDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name        string     `gorm:"not null"`
	Attributes  string     `gorm:"type:jsonb;not null;default:'{}'"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OrderEventDTO) TableName() string {
	return "order_events"
}

func fromDomain(e order.Event) (OrderEventDTO, error) {
	attributes, err := json.Marshal(e.Attributes())
	if err != nil {
		return OrderEventDTO{}, err
	}

	return OrderEventDTO{
		ID:         e.ID().Bytes(),
		OrderID:    e.OrderID().Bytes(),
		Name:       string(e.Name()),
		Attributes: string(attributes),
		OccurredAt: e.OccurredAt().UTC(),
	}, nil
}

func toDomain(dto OrderEventDTO) (order.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Event{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Event{}, err
	}

	attributes := make(map[string]string)
	if err = json.Unmarshal([]byte(dto.Attributes), &attributes); err != nil {
		return order.Event{}, errs.NewDataIsCorruptedErrorWithCause("attributes", err)
	}

	return order.RestoreEvent(id, orderID, order.EventName(dto.Name), dto.OccurredAt, attributes)
}
