package routes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hvac_service/internal/adapter/persistence/repository"
	"hvac_service/internal/infrastructure/cache"
	"hvac_service/internal/infrastructure/database"
	"hvac_service/internal/infrastructure/messaging"
	"hvac_service/internal/usecase"
	"hvac_service/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const startupTimeout = 10 * time.Second

// application holds the use cases behind the HTTP handlers and whatever must be closed on shutdown.
type application struct {
	approvals usecase.IQuoteApprovalUseCase
	inventory usecase.IInventoryUseCase
	closers   []func()
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func buildApplication(ctx context.Context, cfg Config, logger *zap.Logger) (*application, error) {
	app := &application{}

	uow, err := app.newUnitOfWork(ctx, cfg, logger)
	if err != nil {
		app.close()
		return nil, err
	}
	lock := app.newApprovalLock(ctx, cfg, logger)
	publisher := app.newPublisher(cfg, logger)

	app.approvals = usecase.NewQuoteApprovalUseCase(usecase.QuoteApprovalDependencies{
		UnitOfWork: uow,
		Lock:       lock,
		Publisher:  publisher,
		Logger:     logger,
	})
	app.inventory = usecase.NewInventoryUseCase(uow, nil, logger)
	return app, nil
}

func (a *application) newUnitOfWork(ctx context.Context, cfg Config, logger *zap.Logger) (interfaces.IUnitOfWork, error) {
	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseDSN == "" {
			return nil, errors.New("DATABASE_DSN is required for the postgres storage driver")
		}
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
				return nil, err
			}
		}
		pingCtx, cancel := context.WithTimeout(ctx, startupTimeout)
		defer cancel()
		pool, err := database.NewPostgresPool(pingCtx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		logger.Info("storage ready", zap.String("driver", StoragePostgres))
		return repository.NewPostgresUnitOfWork(pool), nil

	case StorageMemory:
		logger.Warn("storage ready", zap.String("driver", StorageMemory))
		return repository.NewMemoryUnitOfWork(), nil

	case StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("storage ready", zap.String("driver", StorageDynamoDB))
		return repository.NewDynamoUnitOfWork(ddb), nil

	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

// newApprovalLock prefers Redis so replicas share locks; a single replica can live with the in-process lock.
func (a *application) newApprovalLock(ctx context.Context, cfg Config, logger *zap.Logger) interfaces.IApprovalLock {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryApprovalLock(cfg.LockTTL)
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-process approval lock", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = client.Close()
		return cache.NewMemoryApprovalLock(cfg.LockTTL)
	}
	a.closers = append(a.closers, func() { _ = client.Close() })
	return cache.NewRedisApprovalLock(client, cfg.LockTTL, logger)
}

func (a *application) newPublisher(cfg Config, logger *zap.Logger) interfaces.IEventPublisher {
	if cfg.RabbitMQURL == "" {
		return messaging.NewLogPublisher(logger)
	}

	conn, err := messaging.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Warn("rabbitmq unavailable, logging events instead", zap.Error(err))
		return messaging.NewLogPublisher(logger)
	}
	publisher, err := messaging.NewRabbitPublisher(conn, cfg.EventsExchange, logger)
	if err != nil {
		logger.Warn("rabbitmq channel setup failed, logging events instead", zap.Error(err))
		_ = conn.Close()
		return messaging.NewLogPublisher(logger)
	}
	a.closers = append(a.closers, func() {
		_ = publisher.Close()
		_ = conn.Close()
	})
	return publisher
}
