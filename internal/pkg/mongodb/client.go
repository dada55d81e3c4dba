package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"medassist/internal/pkg/config"
	"medassist/pkg/logger"
	retrierconfig "medassist/pkg/retrier"
	"medassist/pkg/retrier/backoff_adapter"
)

const (
	maxPoolSize     = 10
	minPoolSize     = 5
	maxConnIdleTime = time.Hour

	initialInterval = 5 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// Connect создает клиент и проверяет соединение ping-ом с ретраями.
// База возвращается явно и дальше передается зависимостью: глобального
// ленивого хендла в сервисах нет.
func Connect(ctx context.Context, log logger.Logger, cfg *config.Database) (*mongo.Client, *mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetMaxConnIdleTime(maxConnIdleTime)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo client: %w", err)
	}

	dbLog := log.With(
		logger.NewField("db", cfg.Name),
	)

	err = pingDatabase(ctx, dbLog, client)
	if err != nil {
		disconnectErr := client.Disconnect(ctx)
		if disconnectErr != nil {
			return nil, nil, fmt.Errorf("database connection: %w (failed to disconnect: %w)", err, disconnectErr)
		}
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}

	return client, client.Database(cfg.Name), nil
}

func pingDatabase(ctx context.Context, log logger.Logger, client *mongo.Client) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Database connection")

		return client.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Database connection failed after retries")
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Database connection established")
	return nil
}
