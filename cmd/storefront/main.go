package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/browse"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/events"
	httpapi "github.com/andreasstove999/ecommerce-system/storefront-go/internal/http"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storage"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogDevelopment)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer closeKV()

	client, err := catalog.NewClient(cfg.CatalogURL, &http.Client{Timeout: cfg.CatalogTimeout})
	if err != nil {
		logger.Fatal("catalog client", zap.Error(err))
	}

	shelf := browse.NewShelf(client, logger.Named("catalog"))
	go func() {
		// a failed load leaves the shelf empty; POST /api/catalog/refresh retries
		if err := shelf.Load(ctx); err != nil {
			logger.Warn("initial catalog load failed", zap.Error(err))
		}
	}()

	cartStore := cart.NewStore(kv, logger.Named("cart"))
	cartStore.Load(ctx)
	orderStore := order.NewStore(kv, logger.Named("orders"))
	orderStore.Load(ctx)

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	svc := checkout.NewService(cartStore, orderStore, publisher, cfg.PaymentDelay, logger.Named("checkout"))

	mux := httpapi.NewRouter(httpapi.Deps{
		Shelf:            shelf,
		Catalog:          client,
		Cart:             cartStore,
		Orders:           orderStore,
		Checkout:         svc,
		Events:           publisher,
		Logger:           logger.Named("http"),
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10*time.Second + cfg.PaymentDelay,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown error", zap.Error(err))
	}
}

func newLogger(development bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewExample()
	}
	return logger.Named("storefront")
}

func openStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.Store, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		if cfg.RunMigrations {
			if err := storage.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
				return nil, nil, err
			}
		}
		pool, err := storage.NewPool(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using postgres storage")
		return storage.NewPostgresStore(pool), pool.Close, nil
	default:
		s, err := storage.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using sqlite storage", zap.String("path", cfg.SQLitePath))
		return s, func() { _ = s.Close() }, nil
	}
}

// newPublisher falls back to dropping events when the broker is not configured or unreachable.
func newPublisher(cfg config.Config, logger *zap.Logger) (events.Publisher, func()) {
	if cfg.RabbitMQURL == "" {
		logger.Info("RABBITMQ_URL not set, order events disabled")
		return events.NopPublisher{}, func() {}
	}

	conn, err := events.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Warn("rabbitmq unavailable, order events disabled", zap.Error(err))
		return events.NopPublisher{}, func() {}
	}

	pub, err := events.NewRabbitPublisher(conn)
	if err != nil {
		_ = conn.Close()
		logger.Warn("rabbitmq publisher setup failed, order events disabled", zap.Error(err))
		return events.NopPublisher{}, func() {}
	}

	return pub, func() {
		if err := pub.Close(); err != nil {
			logger.Warn("publisher close error", zap.Error(err))
		}
		_ = conn.Close()
	}
}
