package provider

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/demo"
	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
	cartsvc "storefront/internal/service/cart"
	"storefront/internal/shopify"
)

// Provider is the uniform catalog, content and cart API implemented by every
// data source.
type Provider interface {
	CreateCart(ctx context.Context) (*domain.Cart, error)
	AddToCart(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error)
	RemoveFromCart(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error)
	UpdateCart(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (*domain.Cart, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)

	GetProduct(ctx context.Context, handle string) (*domain.Product, error)
	GetProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	GetProductRecommendations(ctx context.Context, productID string) ([]domain.Product, error)

	GetCollection(ctx context.Context, handle string) (*domain.Collection, error)
	GetCollectionProducts(ctx context.Context, q domain.CollectionProductsQuery) ([]domain.Product, error)
	GetCollections(ctx context.Context) ([]domain.Collection, error)

	GetMenu(ctx context.Context, handle string) ([]domain.MenuItem, error)
	GetPage(ctx context.Context, handle string) (*domain.Page, error)
	GetPages(ctx context.Context) ([]domain.Page, error)
}

type Mode string

const (
	ModeDemo    Mode = "demo"
	ModeShopify Mode = "shopify"
)

var _ Provider = (*shopify.Client)(nil)

// Deps carries what the demo provider needs.
type Deps struct {
	Catalog     *demo.Catalog
	Carts       cartrepo.Repository
	CartOptions cartsvc.Options
	Logger      *zap.Logger
}

// Select picks the data source once at startup. Demo mode is used unless
// both the Shopify store domain and access token are configured.
func Select(cfg shopify.Config, deps Deps) (Provider, Mode, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.StoreDomain == "" || cfg.AccessToken == "" {
		catalog := deps.Catalog
		if catalog == nil {
			catalog = demo.NewCatalog()
		}
		carts := deps.Carts
		if carts == nil {
			carts = cartrepo.NewMemory()
		}
		logger.Info("provider: demo mode", zap.Int("products", len(catalog.Products())))
		return NewDemo(catalog, cartsvc.New(carts, catalog, deps.CartOptions, logger), logger), ModeDemo, nil
	}

	client, err := shopify.New(cfg, logger)
	if err != nil {
		return nil, "", err
	}
	logger.Info("provider: shopify mode", zap.String("store_domain", cfg.StoreDomain), zap.Bool("no_store", cfg.NoStore))
	return client, ModeShopify, nil
}
