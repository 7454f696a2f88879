package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/dynamodb"
	"storefront/internal/adapters/out/memory"
	"storefront/internal/adapters/out/notify"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/orderstore"
	"storefront/internal/adapters/out/progress"
	"storefront/internal/adapters/out/scheduler"
	"storefront/internal/core/application/tracking"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
)

type CompositionRoot struct {
	logger      *slog.Logger
	store       ports.OrderStore
	feed        *notify.Feed
	board       *progress.Board
	scheduler   *scheduler.CronScheduler
	progression services.Progression
	registry    *tracking.Registry
	closers     []func() error
}

// NewCompositionRoot opens the configured store and builds the tracking
// infrastructure shared by every handler.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	progression, err := LoadProgression(cfg.ProgressionFile)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		logger:      logger,
		feed:        notify.NewFeed(notify.DefaultCapacity, logger),
		board:       progress.NewBoard(logger),
		scheduler:   scheduler.NewCronScheduler(logger),
		progression: progression,
	}

	if c.store, err = c.openStore(ctx, cfg); err != nil {
		return nil, err
	}

	c.registry, err = tracking.NewRegistry(tracking.Dependencies{
		Store:       c.store,
		Notifier:    c.feed,
		Sink:        c.board,
		Scheduler:   c.scheduler,
		Progression: c.progression,
		Logger:      logger,
	})
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	return c, nil
}

func (c *CompositionRoot) openStore(ctx context.Context, cfg Config) (ports.OrderStore, error) {
	switch cfg.StoreBackend {
	case "", StoreMemory:
		c.logger.InfoContext(ctx, "Using in-memory order store")
		return memory.NewOrderStore(), nil

	case StorePostgres:
		dsn := postgres.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSslMode,
		}.DSN()
		if err := postgres.Migrate(dsn, c.logger); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		db, err := postgres.Open(ctx, dsn, c.logger)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, sqlDB.Close)
		return orderstore.NewGormOrderStore(db), nil

	case StoreDynamoDB:
		client, err := dynamodb.NewClient(ctx, dynamodb.ClientConfig{
			Region:          cfg.DynamoDBRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		table := cfg.DynamoDBTable
		if table == "" {
			table = dynamodb.DefaultTableName
		}
		if err = dynamodb.EnsureTable(ctx, client, table, c.logger); err != nil {
			return nil, err
		}
		return dynamodb.NewOrderStore(client, table), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// Close stops every tracker and releases the store.
func (c *CompositionRoot) Close() error {
	if c.registry != nil {
		c.registry.StopAll()
	}

	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.store, c.feed, c.registry, c.progression, c.logger)
}

func (c *CompositionRoot) CreateTrackOrderCommandHandler() commands.TrackOrderCommandHandler {
	return commands.NewTrackOrderCommandHandler(c.store, c.registry, c.logger)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.store, c.registry, c.logger)
}

func (c *CompositionRoot) CreateStopTrackingCommandHandler() commands.StopTrackingCommandHandler {
	return commands.NewStopTrackingCommandHandler(c.registry, c.logger)
}

func (c *CompositionRoot) CreateGetCurrentOrderQueryHandler() queries.GetCurrentOrderQueryHandler {
	return queries.NewGetCurrentOrderQueryHandler(c.store, c.registry)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetSignalsQueryHandler() queries.GetSignalsQueryHandler {
	return queries.NewGetSignalsQueryHandler(c.feed, c.board)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateTrackOrderCommandHandler(),
		c.CreateRateOrderCommandHandler(),
		c.CreateStopTrackingCommandHandler(),
		c.CreateGetCurrentOrderQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetSignalsQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.registry, c.scheduler, c.logger)
}
