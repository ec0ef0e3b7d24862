package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"storefront/internal/bigcommerce"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/demo"
	"storefront/internal/httpserver"
	"storefront/internal/importer"
	"storefront/internal/logging"
	"storefront/internal/provider"
	cartrepo "storefront/internal/repository/cart"
	cartsvc "storefront/internal/service/cart"
	"storefront/internal/service/storefront"
	"storefront/internal/shopify"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		os.Stderr.WriteString("init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named("api")

	ctx := context.Background()

	catalog := demo.NewCatalog()
	if cfg.Demo.CatalogFile != "" {
		loaded, n, err := importer.LoadCatalog(ctx, cfg.Demo.CatalogFile)
		if err != nil {
			logger.Fatal("load demo catalog", zap.String("file", cfg.Demo.CatalogFile), zap.Error(err))
		}
		logger.Info("demo catalog loaded", zap.String("file", cfg.Demo.CatalogFile), zap.Int("products", n))
		catalog = loaded
	}

	carts := cartrepo.NewMemory()
	var cartStore cartrepo.Pinger
	if cfg.DBConnString != "" {
		dbpool, err := db.Connect(ctx, cfg.DBConnString, logger)
		if err != nil {
			logger.Fatal("connect to db", zap.Error(err))
		}
		defer dbpool.Close()
		carts = cartrepo.NewPostgres(dbpool)
		cartStore = dbpool
	}

	p, mode, err := provider.Select(shopify.Config{
		StoreDomain: cfg.Shopify.StoreDomain,
		AccessToken: cfg.Shopify.AccessToken,
		APIVersion:  cfg.Shopify.APIVersion,
		CacheTTL:    cfg.Shopify.CacheTTL,
		NoStore:     cfg.Development(),
	}, provider.Deps{
		Catalog: catalog,
		Carts:   carts,
		CartOptions: cartsvc.Options{
			LegacyDuplicatePricing: cfg.Demo.LegacyDuplicatePricing,
			LegacyUpdateShell:      cfg.Demo.LegacyUpdateShell,
			LegacyStoreEmptyAdd:    cfg.Demo.LegacyStoreEmptyAdd,
		},
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("select provider", zap.Error(err))
	}

	checkout := bigcommerce.New(bigcommerce.Config{
		APIURL:      cfg.BigCommerce.APIURL,
		StoreHash:   cfg.BigCommerce.StoreHash,
		AccessToken: cfg.BigCommerce.AccessToken,
	}, logger)

	svc := storefront.New(p, mode, storefront.Deps{
		Checkout: checkout,
		Extras:   catalog,
		Logger:   logger,
	})

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Storefront:       svc,
		CartStore:        cartStore,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr), zap.String("mode", string(mode)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
