package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Defaults applied by getConfigs when a variable is unset.
const (
	DefaultHTTPPort              = "5000"
	DefaultCatalogFeedURL        = "http://dimensweb.uqac.ca/~jgnault/shops/products/products.json"
	DefaultPaymentGatewayURL     = "http://dimensweb.uqac.ca/~jgnault/shops/pay/"
	DefaultPaymentTimeout        = "10s"
	DefaultKafkaOrderEventsTopic = "order-events"
	DefaultOutboxRelayBatchSize  = "100"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	CatalogFeedURL        string
	PaymentGatewayURL     string
	PaymentTimeout        string
	KafkaBrokers          string
	KafkaOrderEventsTopic string
	OutboxRelaySchedule   string
	OutboxRelayBatchSize  string
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// PaymentTimeoutDuration parses PaymentTimeout as a Go duration ("10s") or
// a whole number of seconds ("10").
func (c Config) PaymentTimeoutDuration() (time.Duration, error) {
	value := strings.TrimSpace(c.PaymentTimeout)
	if seconds, err := strconv.Atoi(value); err == nil {
		value = strconv.Itoa(seconds) + "s"
	}

	timeout, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid PAYMENT_TIMEOUT %q: %w", c.PaymentTimeout, err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("invalid PAYMENT_TIMEOUT %q: must be positive", c.PaymentTimeout)
	}
	return timeout, nil
}

// KafkaBrokerList splits the comma separated broker list. An empty list
// disables event relaying.
func (c Config) KafkaBrokerList() []string {
	var brokers []string
	for broker := range strings.SplitSeq(c.KafkaBrokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

// RelayBatchSize parses OutboxRelayBatchSize.
func (c Config) RelayBatchSize() (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(c.OutboxRelayBatchSize))
	if err != nil {
		return 0, fmt.Errorf("invalid OUTBOX_RELAY_BATCH_SIZE %q: %w", c.OutboxRelayBatchSize, err)
	}
	return size, nil
}
