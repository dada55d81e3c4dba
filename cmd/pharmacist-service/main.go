package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "medassist/internal/app"
	"medassist/internal/handlers/rest/health_get"
	"medassist/internal/handlers/rest/inventory_delete"
	"medassist/internal/handlers/rest/inventory_get"
	"medassist/internal/handlers/rest/inventory_post"
	"medassist/internal/handlers/rest/inventory_put"
	"medassist/internal/handlers/rest/order_accept_post"
	"medassist/internal/handlers/rest/order_decline_post"
	"medassist/internal/handlers/rest/order_get"
	"medassist/internal/handlers/rest/order_prepared_post"
	"medassist/internal/handlers/rest/orders_get"
	"medassist/internal/handlers/rest/pharmacy_profile_get"
	"medassist/internal/handlers/rest/pharmacy_profile_put"
	"medassist/internal/pkg/config"
	"medassist/internal/pkg/dotenv"
	metrics_system "medassist/internal/pkg/metrics"
	"medassist/internal/pkg/middlewares/auth"
	"medassist/internal/pkg/middlewares/graceful_shutdown"
	"medassist/internal/pkg/middlewares/metrics"
	"medassist/internal/pkg/middlewares/rate_limiter"
	"medassist/internal/pkg/middlewares/timeout"
	"medassist/internal/pkg/mongodb"
	"medassist/pkg/logger"
	"medassist/pkg/logger/zap_adapter"
	"medassist/pkg/token_bucket"
)

const serviceName = "pharmacist-service"

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting pharmacist-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // наследование от context.Background() это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	client, db, err := mongodb.Connect(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer func() {
		err := client.Disconnect(context.Background())
		if err != nil {
			runLog.Error("failed to disconnect from database",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializePharmacistApplication(ctx, log, db, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof игнорируется
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.PharmacistApplication, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/health", health_get.New(serviceName, isShuttingDown)).Methods("GET")

	api := router.PathPrefix("/api/v1/pharmacist").Subrouter()
	api.Use(auth.Middleware(log, &cfg.JWT))
	api.Use(auth.RequireRole("pharmacist"))

	api.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders/{id}/accept", order_accept_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id}/decline", order_decline_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id}/prepared", order_prepared_post.New(log, app.ServiceOrder)).Methods("POST")

	api.Handle("/inventory", inventory_get.New(log, app.ServiceInventory)).Methods("GET")
	api.Handle("/inventory", inventory_post.New(log, app.ServiceInventory)).Methods("POST")
	api.Handle("/inventory/{id}", inventory_put.New(log, app.ServiceInventory)).Methods("PUT")
	api.Handle("/inventory/{id}", inventory_delete.New(log, app.ServiceInventory)).Methods("DELETE")

	api.Handle("/profile", pharmacy_profile_get.New(log, app.ServicePharmacy)).Methods("GET")
	api.Handle("/profile", pharmacy_profile_put.New(log, app.ServicePharmacy)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/health", health_get.New(serviceName, isShuttingDown)).Methods("GET")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
