// Package demo holds the static in-memory catalog served when no commerce
// backend is configured.
package demo

import (
	"context"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain"
)

const recommendationLimit = 4

// Catalog is the demo data store. Products are immutable once stored;
// Upsert swaps whole entries.
type Catalog struct {
	mu          sync.RWMutex
	products    []*domain.Product
	collections []domain.Collection
	pages       []domain.Page
	menus       map[string][]domain.MenuItem
	extras      map[string]domain.ProductExtra
}

// NewCatalog returns the built-in AuraGlow catalog.
func NewCatalog() *Catalog {
	now := time.Now().UTC()
	c := newEmptyCatalog(now)
	for _, s := range productSeeds {
		p := MakeProduct(s, now)
		c.products = append(c.products, &p)
	}
	return c
}

// NewEmptyCatalog returns a catalog with the static content but no products,
// ready to be filled by an importer.
func NewEmptyCatalog() *Catalog {
	return newEmptyCatalog(time.Now().UTC())
}

func newEmptyCatalog(now time.Time) *Catalog {
	return &Catalog{
		collections: seedCollections(now),
		pages:       seedPages(now),
		menus: map[string][]domain.MenuItem{
			HeaderMenuHandle: headerMenu,
			FooterMenuHandle: footerMenu,
		},
		extras: productExtras,
	}
}

// Upsert adds or replaces a product by id.
func (c *Catalog) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := p
	for i, existing := range c.products {
		if existing.ID == p.ID {
			c.products[i] = &stored
			return &stored, nil
		}
	}
	c.products = append(c.products, &stored)
	return &stored, nil
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(func(*domain.Product) bool { return true })
}

// Search returns products whose title contains query, case-insensitively.
// An empty query matches everything.
func (c *Catalog) Search(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(func(p *domain.Product) bool {
		return q == "" || strings.Contains(strings.ToLower(p.Title), q)
	})
}

// ProductByHandle resolves the product id, the raw handle or the canonical
// /product/<id> path.
func (c *Catalog) ProductByHandle(handle string) (*domain.Product, bool) {
	h := strings.TrimSpace(handle)
	if h == "" {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == h || p.Handle == h || p.Handle == domain.ProductPath(h) {
			return p, true
		}
	}
	return nil, false
}

func (c *Catalog) ProductByID(id string) (*domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ProductByVariant finds the product owning the merchandise (variant) id.
func (c *Catalog) ProductByVariant(variantID string) (*domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.HasVariant(variantID) {
			return p, true
		}
	}
	return nil, false
}

// Recommendations returns up to four products other than productID.
func (c *Catalog) Recommendations(productID string) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := c.filter(func(p *domain.Product) bool { return p.ID != productID })
	if len(out) > recommendationLimit {
		out = out[:recommendationLimit]
	}
	return out
}

// CollectionProducts filters products by the tag keywords of a collection.
// Homepage collections and unknown handles return the whole catalog.
func (c *Catalog) CollectionProducts(handle string) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if strings.HasPrefix(handle, homepageCollectionPrefix) {
		return c.filter(func(*domain.Product) bool { return true })
	}
	keywords, ok := collectionTags[handle]
	if !ok {
		return c.filter(func(*domain.Product) bool { return true })
	}
	return c.filter(func(p *domain.Product) bool {
		for _, tag := range p.Tags {
			t := strings.ToLower(tag)
			for _, kw := range keywords {
				if strings.Contains(t, strings.ToLower(kw)) {
					return true
				}
			}
		}
		return false
	})
}

func (c *Catalog) Collection(handle string) (domain.Collection, bool) {
	for _, col := range c.collections {
		if col.Handle == handle {
			return col, true
		}
	}
	return domain.Collection{}, false
}

func (c *Catalog) Collections() []domain.Collection {
	return append([]domain.Collection(nil), c.collections...)
}

// Menu returns the menu for a handle, or an empty list.
func (c *Catalog) Menu(handle string) []domain.MenuItem {
	items, ok := c.menus[handle]
	if !ok {
		return []domain.MenuItem{}
	}
	return append([]domain.MenuItem(nil), items...)
}

func (c *Catalog) Page(handle string) (domain.Page, bool) {
	for _, p := range c.pages {
		if p.Handle == handle {
			return p, true
		}
	}
	return domain.Page{}, false
}

func (c *Catalog) Pages() []domain.Page {
	return append([]domain.Page(nil), c.pages...)
}

// Extras returns the extended content for a product, or the zero value.
func (c *Catalog) Extras(productID string) domain.ProductExtra {
	return c.extras[productID]
}

// EmptyCart is the cart value returned before anything is added.
func EmptyCart() domain.Cart {
	return domain.EmptyCart("", "", domain.DefaultCurrency)
}

// filter must be called with c.mu held.
func (c *Catalog) filter(keep func(*domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if keep(p) {
			out = append(out, *p)
		}
	}
	return out
}
