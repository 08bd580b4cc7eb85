package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Beka01247/restaurant-api/docs"
	"github.com/Beka01247/restaurant-api/internal/queue"
	"github.com/Beka01247/restaurant-api/internal/ratelimiter"
	"github.com/Beka01247/restaurant-api/internal/service"
	"github.com/Beka01247/restaurant-api/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// documentStore is the part of the database connection used outside the
// repositories. It is nil when no database is configured.
type documentStore interface {
	ListCollectionNames(ctx context.Context, limit int) ([]string, error)
	Close(ctx context.Context) error
}

type application struct {
	config         config
	logger         *zap.SugaredLogger
	rateLimiter    ratelimiter.Limiter
	store          documentStore
	broker         queue.Broker
	catalogService *service.CatalogService
	orderService   *service.OrderService
	orderWorker    *worker.OrderEventWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	db          dbConfig
	rabbitMQ    rabbitMQConfig
	googleCreds string
}

type dbConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(app.RateLimiterMiddleware)

	r.Get("/", app.rootHandler)
	r.Get("/test", app.storeProbeHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/", app.listMenuHandler)
			r.Post("/", app.createMenuItemHandler)
			r.Post("/seed", app.seedMenuHandler)
			r.Post("/import", app.importMenuHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", app.listOrdersHandler)
			r.Post("/", app.createOrderHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(app.swaggerDocURL())))

	return r
}

// swaggerDocURL is where the swagger UI fetches the spec from. It is built on
// the external URL so it works from a browser; without one the UI resolves
// doc.json relative to its own page.
func (app *application) swaggerDocURL() string {
	if app.config.apiURL == "" {
		return "doc.json"
	}
	return fmt.Sprintf("//%s/swagger/doc.json", app.config.apiURL)
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Restaurant Ordering API"
	docs.SwaggerInfo.Description = "Menu and order API for the restaurant ordering app"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	// workers
	if app.orderWorker != nil {
		if err := app.orderWorker.Start(); err != nil {
			return fmt.Errorf("failed to start order worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.orderWorker != nil {
			app.orderWorker.Stop()
		}

		if app.store != nil {
			if err := app.store.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
