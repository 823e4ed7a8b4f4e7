package cmd

import (
	"log/slog"
	"time"

	"orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/catalogfeed"
	"orderdesk/internal/adapters/out/kafka"
	"orderdesk/internal/adapters/out/paymentgateway"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs        Config
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	pricing        services.Pricing
	paymentTimeout time.Duration
	paymentGateway ports.PaymentGateway
	catalogFeed    ports.CatalogFeed
	eventPublisher *kafka.OrderEventPublisher
	logger         *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	paymentTimeout, err := configs.PaymentTimeoutDuration()
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		configs:        configs,
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:        services.NewPricing(),
		paymentTimeout: paymentTimeout,
		paymentGateway: paymentgateway.NewClient(configs.PaymentGatewayURL, paymentTimeout),
		catalogFeed:    catalogfeed.NewClient(configs.CatalogFeedURL, nil),
		logger:         logger,
	}

	if brokers := configs.KafkaBrokerList(); len(brokers) > 0 {
		root.eventPublisher = kafka.NewOrderEventPublisher(brokers, configs.KafkaOrderEventsTopic)
	}

	return root, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateOrderCommandHandler(f, c.pricing)
	return &handler
}

func (c *CompositionRoot) CreateSetCustomerInfoCommandHandler() *commands.SetCustomerInfoCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewSetCustomerInfoCommandHandler(f, c.pricing)
	return &handler
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() *commands.PayOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewPayOrderCommandHandler(f, c.paymentGateway, c.pricing, c.paymentTimeout)
	return &handler
}

func (c *CompositionRoot) CreateBootstrapCatalogCommandHandler() commands.BootstrapCatalogCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBootstrapCatalogCommandHandler(f, c.catalogFeed, c.logger)
}

// CreateRelayOrderEventsCommandHandler returns false when no event stream
// is configured.
func (c *CompositionRoot) CreateRelayOrderEventsCommandHandler() (commands.RelayOrderEventsCommandHandler, bool) {
	if c.eventPublisher == nil {
		return commands.RelayOrderEventsCommandHandler{}, false
	}

	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOrderEventsCommandHandler(f, c.eventPublisher), true
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateSetCustomerInfoCommandHandler(),
		c.CreatePayOrderCommandHandler(),
		c.CreateListProductsQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.logger,
	)
}

// CreateJobManager returns nil when no event stream is configured.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	handler, ok := c.CreateRelayOrderEventsCommandHandler()
	if !ok {
		return nil, nil
	}

	batchSize, err := c.configs.RelayBatchSize()
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(handler, jobs.RelayConfig{
		Schedule:  c.configs.OutboxRelaySchedule,
		BatchSize: batchSize,
	}, c.logger), nil
}

// Close releases connections held by outbound adapters.
func (c *CompositionRoot) Close() error {
	if c.eventPublisher != nil {
		return c.eventPublisher.Close()
	}
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
