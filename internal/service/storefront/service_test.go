package storefront

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/demo"
	"storefront/internal/domain"
	"storefront/internal/provider"
	cartrepo "storefront/internal/repository/cart"
	cartsvc "storefront/internal/service/cart"
)

// stubProvider returns nil slices and records the last call's arguments.
type stubProvider struct {
	provider.Provider

	addCartID   string
	addLines    []domain.CartLineInput
	updateLines []domain.CartLineUpdate
	err         error
}

func (s *stubProvider) AddToCart(_ context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	s.addCartID = cartID
	s.addLines = lines
	c := domain.EmptyCart("cart-1", "", domain.DefaultCurrency)
	return &c, s.err
}

func (s *stubProvider) UpdateCart(_ context.Context, _ string, lines []domain.CartLineUpdate) (*domain.Cart, error) {
	s.updateLines = lines
	return nil, s.err
}

func (s *stubProvider) GetProducts(context.Context, domain.ProductQuery) ([]domain.Product, error) {
	return nil, s.err
}

func (s *stubProvider) GetCollections(context.Context) ([]domain.Collection, error) {
	return nil, nil
}

func (s *stubProvider) GetMenu(context.Context, string) ([]domain.MenuItem, error) {
	return nil, nil
}

func (s *stubProvider) GetPages(context.Context) ([]domain.Page, error) {
	return nil, nil
}

type stubRedirector struct {
	res *domain.CheckoutRedirect
	err error
}

func (s stubRedirector) RedirectURLs(context.Context, string) (*domain.CheckoutRedirect, error) {
	return s.res, s.err
}

func TestAddToCart_Validation(t *testing.T) {
	stub := &stubProvider{}
	svc := New(stub, provider.ModeShopify, Deps{})
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "", nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for no lines, got %v", err)
	}
	if _, err := svc.AddToCart(ctx, "", []domain.CartLineInput{{Quantity: 1}}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing merchandise, got %v", err)
	}

	c, err := svc.AddToCart(ctx, "  ", []domain.CartLineInput{{MerchandiseID: "v1", Quantity: 1}})
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if stub.addCartID != "" || c.ID != "cart-1" {
		t.Fatalf("expected blank cart id to pass through as empty, got %q", stub.addCartID)
	}
}

func TestUpdateCart_PassesLinesThrough(t *testing.T) {
	stub := &stubProvider{}
	svc := New(stub, provider.ModeShopify, Deps{})
	ctx := context.Background()

	if _, err := svc.UpdateCart(ctx, "cart-1", []domain.CartLineUpdate{{ID: "l1", Quantity: -1}}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.UpdateCart(ctx, "", nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing cart id, got %v", err)
	}

	in := []domain.CartLineUpdate{{ID: "l1", MerchandiseID: "v1", Quantity: 0}}
	c, err := svc.UpdateCart(ctx, "cart-1", in)
	if err != nil || c != nil {
		t.Fatalf("expected nil cart passthrough, got %+v %v", c, err)
	}
	if len(stub.updateLines) != 1 || stub.updateLines[0] != in[0] {
		t.Fatalf("lines not passed through: %+v", stub.updateLines)
	}
}

func TestLists_NeverNil(t *testing.T) {
	svc := New(&stubProvider{}, provider.ModeShopify, Deps{})
	ctx := context.Background()

	products, _ := svc.GetProducts(ctx, domain.ProductQuery{})
	cols, _ := svc.GetCollections(ctx)
	menu, _ := svc.GetMenu(ctx, "main")
	pages, _ := svc.GetPages(ctx)
	if products == nil || cols == nil || menu == nil || pages == nil {
		t.Fatalf("expected non-nil lists")
	}
}

func TestErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	svc := New(&stubProvider{err: boom}, provider.ModeShopify, Deps{})
	if _, err := svc.GetProducts(context.Background(), domain.ProductQuery{}); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestGetCart_EmptyID(t *testing.T) {
	svc := New(&stubProvider{}, provider.ModeShopify, Deps{})
	if _, err := svc.GetCart(context.Background(), ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCheckoutRedirect(t *testing.T) {
	ctx := context.Background()

	unconfigured := New(&stubProvider{}, provider.ModeDemo, Deps{})
	if _, err := unconfigured.CheckoutRedirect(ctx, "cart-1"); !errors.Is(err, domain.ErrConfig) {
		t.Fatalf("expected config error, got %v", err)
	}

	want := &domain.CheckoutRedirect{CheckoutURL: "https://store/checkout"}
	svc := New(&stubProvider{}, provider.ModeDemo, Deps{Checkout: stubRedirector{res: want}})
	got, err := svc.CheckoutRedirect(ctx, "cart-1")
	if err != nil || got.CheckoutURL != want.CheckoutURL {
		t.Fatalf("unexpected redirect %+v %v", got, err)
	}

	failing := New(&stubProvider{}, provider.ModeDemo, Deps{Checkout: stubRedirector{err: domain.ErrTransport}})
	if _, err := failing.CheckoutRedirect(ctx, "cart-1"); !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestDemoScenarios(t *testing.T) {
	ctx := context.Background()
	catalog := demo.NewCatalog()
	engine := cartsvc.New(cartrepo.NewMemory(), catalog, cartsvc.DefaultOptions(), nil)
	svc := New(provider.NewDemo(catalog, engine, nil), provider.ModeDemo, Deps{Extras: catalog})

	if svc.Mode() != provider.ModeDemo {
		t.Fatalf("expected demo mode")
	}

	c, err := svc.AddToCart(ctx, "", []domain.CartLineInput{{MerchandiseID: "1-v2", Quantity: 2, ProductID: "1"}})
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	c, err = svc.AddToCart(ctx, c.ID, []domain.CartLineInput{{MerchandiseID: "1-v2", Quantity: 1}})
	if err != nil || len(c.Lines) != 1 || c.Lines[0].Quantity != 3 {
		t.Fatalf("expected merged line, got %+v %v", c, err)
	}

	gone, err := svc.UpdateCart(ctx, c.ID, []domain.CartLineUpdate{{ID: c.Lines[0].ID, MerchandiseID: "1-v2", Quantity: 0}})
	if err != nil || gone != nil {
		t.Fatalf("expected cart removed, got %+v %v", gone, err)
	}
	if _, err := svc.GetCart(ctx, c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected no cart, got %v", err)
	}

	if _, err := svc.GetProduct(ctx, "unknown-handle"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.GetPage(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found page, got %v", err)
	}

	extras := svc.ProductExtras(ctx, "1")
	if extras.Subtitle == "" {
		t.Fatalf("expected extras for product 1")
	}
	if got := svc.ProductExtras(ctx, "404"); got.Subtitle != "" {
		t.Fatalf("expected zero extras, got %+v", got)
	}
}
