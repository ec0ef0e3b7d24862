package storefront

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/provider"
)

// Service is the single entry point for catalog, content and cart
// operations. The provider is chosen once at startup and injected.
type Service struct {
	provider provider.Provider
	mode     provider.Mode
	checkout redirector
	extras   extrasSource
	logger   *zap.Logger
}

type redirector interface {
	RedirectURLs(ctx context.Context, cartID string) (*domain.CheckoutRedirect, error)
}

type extrasSource interface {
	Extras(productID string) domain.ProductExtra
}

// Deps are the optional collaborators of the facade.
type Deps struct {
	Checkout redirector
	Extras   extrasSource
	Logger   *zap.Logger
}

func New(p provider.Provider, mode provider.Mode, deps Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: p,
		mode:     mode,
		checkout: deps.Checkout,
		extras:   deps.Extras,
		logger:   logger,
	}
}

func (s *Service) Mode() provider.Mode {
	return s.mode
}

func (s *Service) CreateCart(ctx context.Context) (*domain.Cart, error) {
	return s.provider.CreateCart(ctx)
}

// AddToCart adds lines to cartID. An empty cartID creates a new cart.
func (s *Service) AddToCart(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: at least one line is required", domain.ErrValidation)
	}
	for i, l := range lines {
		if strings.TrimSpace(l.MerchandiseID) == "" {
			return nil, fmt.Errorf("%w: line %d: merchandise id is required", domain.ErrValidation, i)
		}
	}
	return s.provider.AddToCart(ctx, strings.TrimSpace(cartID), lines)
}

// RemoveFromCart returns nil when the cart no longer exists.
func (s *Service) RemoveFromCart(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	if strings.TrimSpace(cartID) == "" {
		return nil, fmt.Errorf("%w: cart id is required", domain.ErrValidation)
	}
	return s.provider.RemoveFromCart(ctx, cartID, lineIDs)
}

// UpdateCart sets line quantities; zero removes a line. It returns nil when
// the cart no longer exists.
func (s *Service) UpdateCart(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (*domain.Cart, error) {
	if strings.TrimSpace(cartID) == "" {
		return nil, fmt.Errorf("%w: cart id is required", domain.ErrValidation)
	}
	for i, l := range lines {
		if l.ID == "" {
			return nil, fmt.Errorf("%w: line %d: id is required", domain.ErrValidation, i)
		}
		if l.Quantity < 0 {
			return nil, fmt.Errorf("%w: line %d: quantity must not be negative", domain.ErrValidation, i)
		}
	}
	return s.provider.UpdateCart(ctx, cartID, lines)
}

func (s *Service) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	if strings.TrimSpace(cartID) == "" {
		return nil, domain.ErrNotFound
	}
	return s.provider.GetCart(ctx, cartID)
}

func (s *Service) GetProduct(ctx context.Context, handle string) (*domain.Product, error) {
	return s.provider.GetProduct(ctx, handle)
}

func (s *Service) GetProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	products, err := s.provider.GetProducts(ctx, q)
	return nonNil(products), err
}

func (s *Service) GetProductRecommendations(ctx context.Context, productID string) ([]domain.Product, error) {
	products, err := s.provider.GetProductRecommendations(ctx, productID)
	return nonNil(products), err
}

func (s *Service) GetCollection(ctx context.Context, handle string) (*domain.Collection, error) {
	return s.provider.GetCollection(ctx, handle)
}

func (s *Service) GetCollectionProducts(ctx context.Context, q domain.CollectionProductsQuery) ([]domain.Product, error) {
	products, err := s.provider.GetCollectionProducts(ctx, q)
	return nonNil(products), err
}

func (s *Service) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	cols, err := s.provider.GetCollections(ctx)
	return nonNil(cols), err
}

func (s *Service) GetMenu(ctx context.Context, handle string) ([]domain.MenuItem, error) {
	items, err := s.provider.GetMenu(ctx, handle)
	return nonNil(items), err
}

// GetPage fails with domain.ErrNotFound when the page does not exist.
func (s *Service) GetPage(ctx context.Context, handle string) (*domain.Page, error) {
	return s.provider.GetPage(ctx, handle)
}

func (s *Service) GetPages(ctx context.Context) ([]domain.Page, error) {
	pages, err := s.provider.GetPages(ctx)
	return nonNil(pages), err
}

// ProductExtras returns marketing content for a product id. Unknown ids
// yield the zero value.
func (s *Service) ProductExtras(_ context.Context, productID string) domain.ProductExtra {
	if s.extras == nil {
		return domain.ProductExtra{}
	}
	return s.extras.Extras(productID)
}

// CheckoutRedirect resolves hosted checkout URLs for a backend cart.
func (s *Service) CheckoutRedirect(ctx context.Context, cartID string) (*domain.CheckoutRedirect, error) {
	if s.checkout == nil {
		return nil, fmt.Errorf("%w: checkout redirects are not configured", domain.ErrConfig)
	}
	res, err := s.checkout.RedirectURLs(ctx, cartID)
	if err != nil {
		s.logger.Warn("storefront: checkout redirect failed", zap.String("cart_id", cartID), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
