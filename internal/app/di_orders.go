package app

import (
	"fmt"

	"github.com/allisson/orderflow/internal/database"
	ordersHTTP "github.com/allisson/orderflow/internal/orders/http"
	ordersRepository "github.com/allisson/orderflow/internal/orders/repository"
	ordersUsecase "github.com/allisson/orderflow/internal/orders/usecase"
	outboxRepository "github.com/allisson/orderflow/internal/outbox/repository"
	outboxUsecase "github.com/allisson/orderflow/internal/outbox/usecase"
)

// OrderRepository returns the order repository for the configured driver.
func (c *Container) OrderRepository() (ordersUsecase.OrderRepository, error) {
	var err error
	c.orderRepoInit.Do(func() {
		c.orderRepo, err = c.initOrderRepository()
	})
	if err := c.initResult("orderRepo", err); err != nil {
		return nil, err
	}
	return c.orderRepo, nil
}

// OutboxRepository returns the outbox repository for the configured driver.
func (c *Container) OutboxRepository() (outboxUsecase.OutboxRepository, error) {
	var err error
	c.outboxRepoInit.Do(func() {
		c.outboxRepo, err = c.initOutboxRepository()
	})
	if err := c.initResult("outboxRepo", err); err != nil {
		return nil, err
	}
	return c.outboxRepo, nil
}

// Writer returns the transactional order and outbox writer.
func (c *Container) Writer() (ordersUsecase.Writer, error) {
	var err error
	c.writerInit.Do(func() {
		c.writer, err = c.initWriter()
	})
	if err := c.initResult("writer", err); err != nil {
		return nil, err
	}
	return c.writer, nil
}

// OrderUseCase returns the order use case wrapped with metrics.
func (c *Container) OrderUseCase() (ordersUsecase.OrderUseCase, error) {
	var err error
	c.orderUseCaseInit.Do(func() {
		c.orderUseCase, err = c.initOrderUseCase()
	})
	if err := c.initResult("orderUseCase", err); err != nil {
		return nil, err
	}
	return c.orderUseCase, nil
}

// Processor returns the order processor wrapped with metrics.
func (c *Container) Processor() (ordersUsecase.Processor, error) {
	var err error
	c.processorInit.Do(func() {
		c.processor, err = c.initProcessor()
	})
	if err := c.initResult("processor", err); err != nil {
		return nil, err
	}
	return c.processor, nil
}

// OrderHandler returns the HTTP handler for the order endpoints.
func (c *Container) OrderHandler() (*ordersHTTP.OrderHandler, error) {
	var err error
	c.orderHandlerInit.Do(func() {
		c.orderHandler, err = c.initOrderHandler()
	})
	if err := c.initResult("orderHandler", err); err != nil {
		return nil, err
	}
	return c.orderHandler, nil
}

func (c *Container) initOrderRepository() (ordersUsecase.OrderRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for order repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return ordersRepository.NewMySQLOrderRepository(db), nil
	case database.DriverPostgres:
		return ordersRepository.NewPostgreSQLOrderRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initOutboxRepository() (outboxUsecase.OutboxRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for outbox repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return outboxRepository.NewMySQLOutboxRepository(db), nil
	case database.DriverPostgres:
		return outboxRepository.NewPostgreSQLOutboxRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initWriter() (ordersUsecase.Writer, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for writer: %w", err)
	}
	orderRepo, err := c.OrderRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get order repository for writer: %w", err)
	}
	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for writer: %w", err)
	}
	return ordersUsecase.NewTransactionalWriter(txManager, orderRepo, outboxRepo), nil
}

func (c *Container) initOrderUseCase() (ordersUsecase.OrderUseCase, error) {
	writer, err := c.Writer()
	if err != nil {
		return nil, fmt.Errorf("failed to get writer for order use case: %w", err)
	}
	orderRepo, err := c.OrderRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get order repository for order use case: %w", err)
	}
	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for order use case: %w", err)
	}

	useCase := ordersUsecase.NewOrderUseCase(writer, orderRepo, c.Logger())
	return ordersUsecase.NewOrderUseCaseWithMetrics(useCase, bm), nil
}

func (c *Container) initProcessor() (ordersUsecase.Processor, error) {
	writer, err := c.Writer()
	if err != nil {
		return nil, fmt.Errorf("failed to get writer for processor: %w", err)
	}
	orderRepo, err := c.OrderRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get order repository for processor: %w", err)
	}
	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for processor: %w", err)
	}

	fulfiller := ordersUsecase.DelayFulfiller{Delay: c.config.OrderProcessingDelay}
	processor := ordersUsecase.NewOrderProcessor(orderRepo, writer, fulfiller, c.Logger())
	return ordersUsecase.NewProcessorWithMetrics(processor, bm), nil
}

func (c *Container) initOrderHandler() (*ordersHTTP.OrderHandler, error) {
	useCase, err := c.OrderUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get order use case for handler: %w", err)
	}
	return ordersHTTP.NewOrderHandler(useCase, c.Logger()), nil
}
