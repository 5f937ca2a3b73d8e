package app

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/allisson/orderflow/internal/messaging"
	"github.com/allisson/orderflow/internal/orders/consumer"
	outboxUsecase "github.com/allisson/orderflow/internal/outbox/usecase"
)

// ErrBrokerNotConfigured is returned when a component needs a real broker but
// KAFKA_BROKERS is empty.
var ErrBrokerNotConfigured = errors.New("message broker not configured: set KAFKA_BROKERS")

// Publisher returns the Kafka publisher, or the logging fallback when no
// brokers are configured.
func (c *Container) Publisher() messaging.Publisher {
	c.publisherInit.Do(func() {
		c.publisher = c.initPublisher()
	})
	return c.publisher
}

// Leaser returns the Redis lease store, or a no-op one when Redis is not configured.
func (c *Container) Leaser() messaging.Leaser {
	c.leaserInit.Do(func() {
		c.leaser = c.initLeaser()
	})
	return c.leaser
}

// Consumer returns the Kafka consumer. It fails without configured brokers.
func (c *Container) Consumer() (messaging.Consumer, error) {
	var err error
	c.consumerInit.Do(func() {
		c.consumer, err = c.initConsumer()
	})
	if err := c.initResult("consumer", err); err != nil {
		return nil, err
	}
	return c.consumer, nil
}

// Relay returns the outbox relay.
func (c *Container) Relay() (outboxUsecase.UseCase, error) {
	var err error
	c.relayInit.Do(func() {
		c.relay, err = c.initRelay()
	})
	if err := c.initResult("relay", err); err != nil {
		return nil, err
	}
	return c.relay, nil
}

// ConsumerLoop returns the loop that feeds consumed messages to the processor.
func (c *Container) ConsumerLoop() (*consumer.Loop, error) {
	var err error
	c.consumerLoopInit.Do(func() {
		c.consumerLoop, err = c.initConsumerLoop()
	})
	if err := c.initResult("consumerLoop", err); err != nil {
		return nil, err
	}
	return c.consumerLoop, nil
}

func (c *Container) kafkaConfig() messaging.KafkaConfig {
	return messaging.KafkaConfig{
		Brokers:         c.config.KafkaBrokerList(),
		ClientID:        c.config.KafkaClientID,
		Topic:           c.config.KafkaTopic,
		DeadLetterTopic: c.config.KafkaDeadLetterTopic,
		ConsumerGroup:   c.config.KafkaConsumerGroup,
	}
}

func (c *Container) initPublisher() messaging.Publisher {
	if !c.config.BrokerEnabled() {
		c.Logger().Warn("no message broker configured, outbox records will only be logged")
		return messaging.NewLocalPublisher(c.Logger())
	}
	return messaging.NewKafkaPublisher(c.kafkaConfig(), c.Logger())
}

func (c *Container) initLeaser() messaging.Leaser {
	if !c.config.LeaseEnabled() {
		return messaging.NewNoopLeaser()
	}
	c.redisClient = redis.NewClient(&redis.Options{
		Addr:     c.config.RedisAddr,
		Password: c.config.RedisPassword,
		DB:       c.config.RedisDB,
	})
	return messaging.NewRedisLeaser(c.redisClient)
}

func (c *Container) initConsumer() (messaging.Consumer, error) {
	if !c.config.BrokerEnabled() {
		return nil, ErrBrokerNotConfigured
	}
	opts := messaging.ConsumerOptions{
		AbandonDelay:    c.config.ConsumerAbandonDelay,
		LeaseTTL:        c.config.ConsumerLeaseTTL,
		MaxLeaseRenewal: c.config.ConsumerMaxLeaseRenewal,
	}
	return messaging.NewKafkaConsumer(c.kafkaConfig(), opts, c.Leaser(), c.Logger()), nil
}

func (c *Container) initRelay() (outboxUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for relay: %w", err)
	}
	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for relay: %w", err)
	}
	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for relay: %w", err)
	}

	cfg := outboxUsecase.Config{
		Interval:  c.config.OutboxRelayInterval,
		BatchSize: c.config.OutboxRelayBatchSize,
		Topic:     c.config.KafkaTopic,
	}
	return outboxUsecase.NewRelay(cfg, txManager, outboxRepo, c.Publisher(), bm, c.Logger()), nil
}

func (c *Container) initConsumerLoop() (*consumer.Loop, error) {
	msgConsumer, err := c.Consumer()
	if err != nil {
		return nil, fmt.Errorf("failed to get consumer for consumer loop: %w", err)
	}
	processor, err := c.Processor()
	if err != nil {
		return nil, fmt.Errorf("failed to get processor for consumer loop: %w", err)
	}
	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for consumer loop: %w", err)
	}
	return consumer.NewLoop(consumer.Config{}, msgConsumer, processor, bm, c.Logger()), nil
}
