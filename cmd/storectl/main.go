// Command storectl queries the configured storefront backend from the shell
// and validates demo catalog files.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"storefront/internal/bigcommerce"
	"storefront/internal/config"
	"storefront/internal/demo"
	"storefront/internal/importer"
	"storefront/internal/logging"
	"storefront/internal/provider"
	cartsvc "storefront/internal/service/cart"
	"storefront/internal/service/storefront"
	"storefront/internal/shopify"
)

func main() {
	cfg := config.FromEnv()
	// Logs go to stderr through zap; stdout stays JSON only.
	logger, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		os.Stderr.WriteString("init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	root := newRootCmd(func(ctx context.Context) (*storefront.Service, error) {
		return open(ctx, cfg, logger.Named("storectl"))
	})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// open builds the facade the same way the API server does, minus the
// persistent cart store.
func open(ctx context.Context, cfg config.Config, logger *zap.Logger) (*storefront.Service, error) {
	catalog := demo.NewCatalog()
	if cfg.Demo.CatalogFile != "" {
		loaded, _, err := importer.LoadCatalog(ctx, cfg.Demo.CatalogFile)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}

	p, mode, err := provider.Select(shopify.Config{
		StoreDomain: cfg.Shopify.StoreDomain,
		AccessToken: cfg.Shopify.AccessToken,
		APIVersion:  cfg.Shopify.APIVersion,
		NoStore:     true,
	}, provider.Deps{
		Catalog: catalog,
		CartOptions: cartsvc.Options{
			LegacyDuplicatePricing: cfg.Demo.LegacyDuplicatePricing,
			LegacyUpdateShell:      cfg.Demo.LegacyUpdateShell,
			LegacyStoreEmptyAdd:    cfg.Demo.LegacyStoreEmptyAdd,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	return storefront.New(p, mode, storefront.Deps{
		Checkout: bigcommerce.New(bigcommerce.Config{
			APIURL:      cfg.BigCommerce.APIURL,
			StoreHash:   cfg.BigCommerce.StoreHash,
			AccessToken: cfg.BigCommerce.AccessToken,
		}, logger),
		Extras: catalog,
		Logger: logger,
	}), nil
}
