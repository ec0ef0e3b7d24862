package provider

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/demo"
	"storefront/internal/domain"
)

type cartEngine interface {
	Create(ctx context.Context) (*domain.Cart, error)
	Add(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error)
	Remove(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error)
	Update(ctx context.Context, cartID string, updates []domain.CartLineUpdate) (*domain.Cart, error)
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
}

// Demo serves the static catalog and the in-process cart engine.
type Demo struct {
	catalog *demo.Catalog
	carts   cartEngine
	logger  *zap.Logger
}

func NewDemo(catalog *demo.Catalog, carts cartEngine, logger *zap.Logger) *Demo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Demo{catalog: catalog, carts: carts, logger: logger}
}

func (d *Demo) CreateCart(ctx context.Context) (*domain.Cart, error) {
	return d.carts.Create(ctx)
}

func (d *Demo) AddToCart(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	return d.carts.Add(ctx, cartID, lines)
}

func (d *Demo) RemoveFromCart(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	return d.carts.Remove(ctx, cartID, lineIDs)
}

func (d *Demo) UpdateCart(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (*domain.Cart, error) {
	return d.carts.Update(ctx, cartID, lines)
}

func (d *Demo) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	return d.carts.Get(ctx, cartID)
}

func (d *Demo) GetProduct(_ context.Context, handle string) (*domain.Product, error) {
	p, ok := d.catalog.ProductByHandle(handle)
	if !ok {
		d.logger.Debug("demo provider: product not found", zap.String("handle", handle))
		return nil, domain.ErrNotFound
	}
	out := *p
	return &out, nil
}

// GetProducts filters by title. Sort parameters are ignored; the demo
// catalog keeps its own order.
func (d *Demo) GetProducts(_ context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	return d.catalog.Search(q.Query), nil
}

func (d *Demo) GetProductRecommendations(_ context.Context, productID string) ([]domain.Product, error) {
	return d.catalog.Recommendations(productID), nil
}

func (d *Demo) GetCollection(_ context.Context, handle string) (*domain.Collection, error) {
	c, ok := d.catalog.Collection(handle)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (d *Demo) GetCollectionProducts(_ context.Context, q domain.CollectionProductsQuery) ([]domain.Product, error) {
	return d.catalog.CollectionProducts(q.Collection), nil
}

func (d *Demo) GetCollections(_ context.Context) ([]domain.Collection, error) {
	return d.catalog.Collections(), nil
}

func (d *Demo) GetMenu(_ context.Context, handle string) ([]domain.MenuItem, error) {
	return d.catalog.Menu(handle), nil
}

func (d *Demo) GetPage(_ context.Context, handle string) (*domain.Page, error) {
	p, ok := d.catalog.Page(handle)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (d *Demo) GetPages(_ context.Context) ([]domain.Page, error) {
	return d.catalog.Pages(), nil
}
