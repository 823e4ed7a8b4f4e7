package commands_test

import (
	"context"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) AddAll(ctx context.Context, products []*product.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id int) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderEventRepository struct{ mock.Mock }

func (m *MockOrderEventRepository) Add(ctx context.Context, events []order.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockOrderEventRepository) GetUnpublished(ctx context.Context, limit int) ([]order.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Event), args.Error(1)
}

func (m *MockOrderEventRepository) MarkPublished(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderEventRepository() ports.OrderEventRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderEventRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Authorize(
	ctx context.Context,
	card ports.CreditCard,
	amountCharged int64,
) (ports.PaymentAuthorization, error) {
	args := m.Called(ctx, card, amountCharged)
	return args.Get(0).(ports.PaymentAuthorization), args.Error(1)
}

type MockCatalogFeed struct{ mock.Mock }

func (m *MockCatalogFeed) FetchProducts(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newTestProduct(t *testing.T, id int, price string, weight int, inStock bool) *product.Product {
	t.Helper()

	money, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)

	p, err := product.NewProduct(id, "Brown eggs", "Raw organic brown eggs in a basket", money, weight, inStock, "0.jpg")
	require.NoError(t, err)
	return p
}

func newCreatedOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), newTestProduct(t, 1, "10.00", 100, true), 3, services.NewPricing())
	require.NoError(t, err)
	return o
}

func newInformedOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newCreatedOrder(t)
	addr, err := order.NewShippingAddress("Canada", "201, rue Président-Kennedy", "G7X 3Y7", "Chicoutimi", "QC")
	require.NoError(t, err)
	require.NoError(t, o.SetCustomerInfo("jgnault@uqac.ca", addr, services.NewPricing()))
	return o
}

func newPaidOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newInformedOrder(t)
	require.NoError(t, o.MarkPaid(
		order.NewPaymentRecord(map[string]any{"last_digits": "4242"}),
		order.NewPaymentRecord(map[string]any{"id": "first", "success": true}),
	))
	return o
}

func validCard() ports.CreditCard {
	return ports.CreditCard{
		Name:            "John Doe",
		Number:          "4242 4242 4242 4242",
		ExpirationYear:  2030,
		ExpirationMonth: 9,
		CVV:             "123",
	}
}
