package shopify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storefront/internal/domain"
)

type lineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

type lineUpdateInput struct {
	ID            string `json:"id"`
	MerchandiseID string `json:"merchandiseId,omitempty"`
	Quantity      int    `json:"quantity"`
}

func (c *Client) CreateCart(ctx context.Context) (*domain.Cart, error) {
	var data struct {
		CartCreate cartPayload `json:"cartCreate"`
	}
	if err := c.fetch(ctx, createCartMutation, nil, false, &data); err != nil {
		return nil, err
	}
	return requireCart(data.CartCreate.Cart, "cartCreate")
}

// AddToCart adds lines to cartID, or creates a cart holding them when
// cartID is empty.
func (c *Client) AddToCart(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	in := make([]lineInput, 0, len(lines))
	for _, l := range lines {
		in = append(in, lineInput{MerchandiseID: l.MerchandiseID, Quantity: l.Quantity})
	}

	if cartID == "" {
		var data struct {
			CartCreate cartPayload `json:"cartCreate"`
		}
		if err := c.fetch(ctx, createCartWithLinesMutation, map[string]any{"lines": in}, false, &data); err != nil {
			return nil, err
		}
		return requireCart(data.CartCreate.Cart, "cartCreate")
	}

	var data struct {
		CartLinesAdd cartPayload `json:"cartLinesAdd"`
	}
	vars := map[string]any{"cartId": cartID, "lines": in}
	if err := c.fetch(ctx, addToCartMutation, vars, false, &data); err != nil {
		return nil, err
	}
	return requireCart(data.CartLinesAdd.Cart, "cartLinesAdd")
}

// RemoveFromCart returns nil when the backend no longer reports the cart.
func (c *Client) RemoveFromCart(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	var data struct {
		CartLinesRemove cartPayload `json:"cartLinesRemove"`
	}
	vars := map[string]any{"cartId": cartID, "lineIds": lineIDs}
	if err := c.fetch(ctx, removeFromCartMutation, vars, false, &data); err != nil {
		return nil, err
	}
	return optionalCart(data.CartLinesRemove.Cart), nil
}

func (c *Client) UpdateCart(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (*domain.Cart, error) {
	in := make([]lineUpdateInput, 0, len(lines))
	for _, l := range lines {
		in = append(in, lineUpdateInput{ID: l.ID, MerchandiseID: l.MerchandiseID, Quantity: l.Quantity})
	}
	var data struct {
		CartLinesUpdate cartPayload `json:"cartLinesUpdate"`
	}
	vars := map[string]any{"cartId": cartID, "lines": in}
	if err := c.fetch(ctx, updateCartMutation, vars, false, &data); err != nil {
		return nil, err
	}
	return optionalCart(data.CartLinesUpdate.Cart), nil
}

func (c *Client) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	var data struct {
		Cart *cart `json:"cart"`
	}
	if err := c.fetch(ctx, getCartQuery, map[string]any{"cartId": cartID}, false, &data); err != nil {
		return nil, err
	}
	if data.Cart == nil {
		return nil, domain.ErrNotFound
	}
	out := reshapeCart(*data.Cart)
	return &out, nil
}

func (c *Client) GetProduct(ctx context.Context, handle string) (*domain.Product, error) {
	var data struct {
		Product *product `json:"product"`
	}
	if err := c.fetch(ctx, getProductQuery, map[string]any{"handle": handle}, true, &data); err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, domain.ErrNotFound
	}
	out := reshapeProduct(*data.Product)
	return &out, nil
}

func (c *Client) GetProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	var data struct {
		Products *connection[product] `json:"products"`
	}
	vars := map[string]any{
		"query":   q.Query,
		"sortKey": sortKey(q.SortKey),
		"reverse": q.Reverse,
		"first":   pageSize,
	}
	if err := c.fetch(ctx, getProductsQuery, vars, true, &data); err != nil {
		return nil, err
	}
	return reshapeProducts(data.Products.nodes()), nil
}

func (c *Client) GetProductRecommendations(ctx context.Context, productID string) ([]domain.Product, error) {
	var data struct {
		ProductRecommendations []product `json:"productRecommendations"`
	}
	if err := c.fetch(ctx, getProductRecommendationsQuery, map[string]any{"productId": productID}, true, &data); err != nil {
		return nil, err
	}
	return reshapeProducts(data.ProductRecommendations), nil
}

func (c *Client) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	var data struct {
		Collections *connection[collection] `json:"collections"`
	}
	if err := c.fetch(ctx, getCollectionsQuery, nil, true, &data); err != nil {
		return nil, err
	}
	nodes := data.Collections.nodes()
	out := make([]domain.Collection, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, reshapeCollection(n))
	}
	return out, nil
}

func (c *Client) GetCollection(ctx context.Context, handle string) (*domain.Collection, error) {
	var data struct {
		Collection *collection `json:"collection"`
	}
	if err := c.fetch(ctx, getCollectionQuery, map[string]any{"handle": handle}, true, &data); err != nil {
		return nil, err
	}
	if data.Collection == nil {
		return nil, domain.ErrNotFound
	}
	out := reshapeCollection(*data.Collection)
	return &out, nil
}

func (c *Client) GetCollectionProducts(ctx context.Context, q domain.CollectionProductsQuery) ([]domain.Product, error) {
	var data struct {
		Collection *struct {
			Products *connection[product] `json:"products"`
		} `json:"collection"`
	}
	vars := map[string]any{
		"handle":  q.Collection,
		"sortKey": sortKey(q.SortKey),
		"reverse": q.Reverse,
		"first":   pageSize,
	}
	if err := c.fetch(ctx, getCollectionProductsQuery, vars, true, &data); err != nil {
		return nil, err
	}
	if data.Collection == nil {
		c.logger.Debug("shopify: collection not found", zap.String("handle", q.Collection))
		return []domain.Product{}, nil
	}
	return reshapeProducts(data.Collection.Products.nodes()), nil
}

func (c *Client) GetMenu(ctx context.Context, handle string) ([]domain.MenuItem, error) {
	var data struct {
		Menu *struct {
			Items []menuItem `json:"items"`
		} `json:"menu"`
	}
	if err := c.fetch(ctx, getMenuQuery, map[string]any{"handle": handle}, true, &data); err != nil {
		return nil, err
	}
	if data.Menu == nil {
		return []domain.MenuItem{}, nil
	}
	return reshapeMenu(data.Menu.Items, c.storeDomain), nil
}

func (c *Client) GetPages(ctx context.Context) ([]domain.Page, error) {
	var data struct {
		Pages *connection[page] `json:"pages"`
	}
	if err := c.fetch(ctx, getPagesQuery, nil, true, &data); err != nil {
		return nil, err
	}
	nodes := data.Pages.nodes()
	out := make([]domain.Page, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, reshapePage(n))
	}
	return out, nil
}

func (c *Client) GetPage(ctx context.Context, handle string) (*domain.Page, error) {
	var data struct {
		Page *page `json:"page"`
	}
	if err := c.fetch(ctx, getPageQuery, map[string]any{"handle": handle}, true, &data); err != nil {
		return nil, err
	}
	if data.Page == nil {
		return nil, domain.ErrNotFound
	}
	out := reshapePage(*data.Page)
	return &out, nil
}

func requireCart(c *cart, op string) (*domain.Cart, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: shopify %s returned no cart", domain.ErrTransport, op)
	}
	out := reshapeCart(*c)
	return &out, nil
}

func optionalCart(c *cart) *domain.Cart {
	if c == nil {
		return nil
	}
	out := reshapeCart(*c)
	return &out
}
