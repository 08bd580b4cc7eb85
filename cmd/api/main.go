package main

import (
	"context"
	"os"
	"time"

	"github.com/Beka01247/restaurant-api/internal/env"
	"github.com/Beka01247/restaurant-api/internal/parser"
	"github.com/Beka01247/restaurant-api/internal/queue"
	"github.com/Beka01247/restaurant-api/internal/ratelimiter"
	"github.com/Beka01247/restaurant-api/internal/service"
	"github.com/Beka01247/restaurant-api/internal/store/mongo"
	"github.com/Beka01247/restaurant-api/internal/worker"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const version = "0.1.0"

//	@title			Restaurant Ordering API
//	@description	Menu and order API for the restaurant ordering app

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath	/
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   ":" + env.GetString("PORT", "8000"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:8000"),
		env:    env.GetString("ENV", "development"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", false),
		},
		db: dbConfig{
			URI:      env.GetString("DATABASE_URL", ""),
			Database: env.GetString("DATABASE_NAME", "restaurant"),
			Timeout:  time.Second * 10,
		},
		rabbitMQ: rabbitMQConfig{
			URL:           env.GetString("RABBITMQ_URL", ""),
			MaxRetries:    env.GetInt("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay:    time.Second * 2,
			PrefetchCount: env.GetInt("RABBITMQ_PREFETCH_COUNT", 10),
		},
		googleCreds: env.GetString("GOOGLE_CREDENTIALS_PATH", ""),
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// storage
	var storage *mongo.Storage
	var store documentStore
	if cfg.db.URI != "" {
		var err error
		storage, err = mongo.New(mongo.Config{
			URI:      cfg.db.URI,
			Database: cfg.db.Database,
			Timeout:  cfg.db.Timeout,
		})
		if err != nil {
			logger.Fatalw("failed to connect to MongoDB", "error", err)
		}
		store = storage

		logger.Infow("connected to MongoDB", "database", cfg.db.Database)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := storage.CreateIndexes(ctx); err != nil {
			logger.Warnw("failed to create indexes", "error", err)
		} else {
			logger.Info("MongoDB indexes created successfully")
		}
		cancel()
	} else {
		logger.Warn("DATABASE_URL not set, menu and order endpoints will fail")
	}

	// repos
	menuRepo := mongo.NewMenuRepository(storage.Database())
	orderRepo := mongo.NewOrderRepository(storage.Database())
	orderAuditRepo := mongo.NewOrderAuditRepository(storage.Database())

	// rabbitmq broker
	var broker queue.Broker
	if cfg.rabbitMQ.URL != "" {
		rabbit, err := queue.NewRabbitMQBroker(queue.Config{
			URL:           cfg.rabbitMQ.URL,
			MaxRetries:    cfg.rabbitMQ.MaxRetries,
			RetryDelay:    cfg.rabbitMQ.RetryDelay,
			PrefetchCount: cfg.rabbitMQ.PrefetchCount,
			Logger:        logger,
		})
		if err != nil {
			logger.Fatalw("failed to connect to RabbitMQ", "error", err)
		}
		broker = rabbit

		logger.Info("connected to RabbitMQ")
	} else {
		logger.Warn("RABBITMQ_URL not set, order events are disabled")
	}

	var menuSource service.MenuSource
	if cfg.googleCreds != "" {
		credsJSON, err := os.ReadFile(cfg.googleCreds)
		if err != nil {
			logger.Fatalw("failed to read Google credentials", "error", err)
		}

		googleParser, err := parser.New(parser.Config{
			CredentialsJSON: credsJSON,
		})
		if err != nil {
			logger.Fatalw("failed to create Google Sheets parser", "error", err)
		}
		menuSource = googleParser

		logger.Info("Google Sheets parser initialized")
	} else {
		logger.Warn("Google credentials not provided, menu import is disabled")
	}

	catalogService := service.NewCatalogService(menuRepo, menuSource, logger)
	orderService := service.NewOrderService(orderRepo, orderAuditRepo, broker, logger)

	var orderWorker *worker.OrderEventWorker
	if broker != nil {
		orderWorker = worker.NewOrderEventWorker(orderService, broker, logger)
	}

	app := &application{
		config:         cfg,
		logger:         logger,
		rateLimiter:    rateLimiter,
		store:          store,
		broker:         broker,
		catalogService: catalogService,
		orderService:   orderService,
		orderWorker:    orderWorker,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
