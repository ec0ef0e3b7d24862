package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	cartsvc "storefront/internal/service/cart"
	"storefront/internal/shopify"
)

func TestSelect_DemoWhenCredentialsMissing(t *testing.T) {
	for _, cfg := range []shopify.Config{
		{},
		{StoreDomain: "shop.example.com"},
		{AccessToken: "token"},
	} {
		p, mode, err := Select(cfg, Deps{CartOptions: cartsvc.DefaultOptions()})
		require.NoError(t, err)
		assert.Equal(t, ModeDemo, mode)
		assert.IsType(t, &Demo{}, p)
	}
}

func TestSelect_Shopify(t *testing.T) {
	p, mode, err := Select(shopify.Config{StoreDomain: "shop.example.com", AccessToken: "token"}, Deps{})
	require.NoError(t, err)
	assert.Equal(t, ModeShopify, mode)
	assert.IsType(t, &shopify.Client{}, p)
}

func demoProvider(t *testing.T) Provider {
	t.Helper()
	p, _, err := Select(shopify.Config{}, Deps{CartOptions: cartsvc.DefaultOptions()})
	require.NoError(t, err)
	return p
}

func TestDemo_Catalog(t *testing.T) {
	ctx := context.Background()
	p := demoProvider(t)

	product, err := p.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "/product/1", product.Handle)

	_, err = p.GetProduct(ctx, "unknown-handle")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	products, err := p.GetProducts(ctx, domain.ProductQuery{Query: "serum", SortKey: "price", Reverse: true})
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, prod := range products {
		assert.Contains(t, prod.Title, "Serum")
	}

	recs, err := p.GetProductRecommendations(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, recs, 4)

	serums, err := p.GetCollectionProducts(ctx, domain.CollectionProductsQuery{Collection: "serums"})
	require.NoError(t, err)
	assert.NotEmpty(t, serums)
}

func TestDemo_Content(t *testing.T) {
	ctx := context.Background()
	p := demoProvider(t)

	cols, err := p.GetCollections(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cols)

	col, err := p.GetCollection(ctx, cols[0].Handle)
	require.NoError(t, err)
	assert.Equal(t, "/search/"+cols[0].Handle, col.Path)

	_, err = p.GetCollection(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	menu, err := p.GetMenu(ctx, "next-js-frontend-header-menu")
	require.NoError(t, err)
	assert.NotEmpty(t, menu)
	menu, err = p.GetMenu(ctx, "nope")
	require.NoError(t, err)
	assert.NotNil(t, menu)
	assert.Empty(t, menu)

	page, err := p.GetPage(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, "about", page.Handle)
	_, err = p.GetPage(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pages, err := p.GetPages(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 2)
}

func TestDemo_CartLifecycle(t *testing.T) {
	ctx := context.Background()
	p := demoProvider(t)

	empty, err := p.CreateCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Lines)

	c, err := p.AddToCart(ctx, empty.ID, []domain.CartLineInput{{MerchandiseID: "1-v2", Quantity: 2, ProductID: "1"}})
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalQuantity)

	c, err = p.UpdateCart(ctx, c.ID, []domain.CartLineUpdate{{ID: c.Lines[0].ID, MerchandiseID: "1-v2", Quantity: 0}})
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = p.GetCart(ctx, "demo-cart-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
