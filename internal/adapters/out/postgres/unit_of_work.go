// Package postgres provides the GORM-based Unit of Work used by every
// command handler. A unit of work wraps one database transaction, hands out
// repositories bound to it and tracks the order aggregates they touch.
//
// On Commit the domain events recorded by tracked orders are written to the
// order_events outbox inside the same transaction, so an order change and
// its events are stored together or not at all.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate o
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is meant for a single goroutine; concurrent
// requests get separate instances from the factory.
package postgres

import (
	"context"
	"errors"

	"orderdesk/internal/adapters/out/postgres/ordereventrepo"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/productrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"gorm.io/gorm"
)

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	DomainEvents() []order.Event
	ClearDomainEvents()
}

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state and
// tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates changed through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin again while a
// transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes pending domain events of tracked aggregates to the outbox
// and commits the transaction. Events are cleared from the aggregates only
// after a successful commit.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sources, events := uow.pendingEvents()
	if len(events) > 0 {
		if err := ordereventrepo.NewGormOrderEventRepository(uow.tx).Add(ctx, events); err != nil {
			return errors.Join(err, uow.Rollback(ctx))
		}
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, source := range sources {
		source.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	return nil
}

// Rollback discards all changes made within the current transaction.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open, which makes
// a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the pool when none is open. Orders it adds or updates
// are tracked by this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ProductRepository returns a product repository bound to the current transaction.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

// OrderEventRepository returns an outbox repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderEventRepository() ports.OrderEventRepository {
	return ordereventrepo.NewGormOrderEventRepository(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Tracking the same ID twice keeps the latest instance.
//
// Example (used by repository implementations):
//
//	if err := r.db.Create(&dto).Error; err != nil {
//	    return err
//	}
//	r.tracker.TrackAggregate(o.ID(), o)
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for i, tracked := range uow.trackedAggregates {
		if tracked.ID.IsEqual(id) {
			uow.trackedAggregates[i].Aggregate = aggregate
			return
		}
	}

	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) pendingEvents() ([]eventSource, []order.Event) {
	var (
		sources []eventSource
		events  []order.Event
	)

	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		if pending := source.DomainEvents(); len(pending) > 0 {
			sources = append(sources, source)
			events = append(events, pending...)
		}
	}

	return sources, events
}
