// Package main is the entry point for the salesdesk API server.
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

	"golang.org/x/sync/errgroup"

	"salesdesk/internal/config"
	"salesdesk/internal/core/clock"
	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/domain/ledger"
	"salesdesk/internal/domain/lifecycle"
	"salesdesk/internal/domain/promotion"
	"salesdesk/internal/domain/registers/stock"
	v1 "salesdesk/internal/infrastructure/http/v1"
	"salesdesk/internal/infrastructure/storage/memory"
	"salesdesk/pkg/logger"
	"salesdesk/pkg/numerator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, log)

	log.Infow("starting salesdesk server",
		"env", cfg.AppEnv,
		"tax_rate", cfg.TaxRate,
		"number_reset", cfg.ResetPeriod(),
		"numerator_strategy", cfg.NumeratorStrategy,
	)

	// --- Stores and services ---
	clk := clock.System{}
	products := product.NewService(memory.NewProductRepo())
	inventory := stock.NewService(memory.NewInventoryRepo(), clk)
	promotions := promotion.NewService(memory.NewPromotionRepo())
	recorder := ledger.NewRecorder(memory.NewJournal(), clk)

	lifecycleService := lifecycle.NewService(lifecycle.Deps{
		Quotations: memory.NewQuotationRepo(),
		Orders:     memory.NewOrderRepo(),
		Invoices:   memory.NewInvoiceRepo(),
		Catalog:    products,
		Inventory:  inventory,
		Promotions: promotions,
		Numerator:  numerator.New(numerator.NewMemoryStore()),
		Ledger:     recorder,
		TxManager:  memory.NewTxManager(),
		Clock:      clk,
	}, lifecycle.Options{
		QuotationStrategy: cfg.QuotationStrategy(),
		ResetPeriod:       cfg.ResetPeriod(),
	})

	if cfg.SeedDemo {
		if err := seedDemo(ctx, products, inventory, promotions, clk.Now()); err != nil {
			log.Fatalw("failed to seed demo catalog", "error", err)
		}
		log.Info("demo catalog seeded")
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:     log,
		Products:   products,
		Inventory:  inventory,
		Promotions: promotions,
		Lifecycle:  lifecycleService,
		Ledger:     recorder,
		Clock:      clk,
		TaxRate:    cfg.TaxRate,
		Currency:   cfg.Currency,
		Debug:      cfg.IsDevelopment(),
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infow("server starting", "port", cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		// Give outstanding requests 30 seconds to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorw("server stopped with error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
