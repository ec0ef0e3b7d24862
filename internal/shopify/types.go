package shopify

import (
	"time"

	"storefront/internal/domain"
)

// Native Storefront API response shapes. Money, options and selected
// options already match the canonical JSON and are decoded directly.

type edge[T any] struct {
	Node T `json:"node"`
}

type connection[T any] struct {
	Edges []edge[T] `json:"edges"`
}

func (c *connection[T]) nodes() []T {
	if c == nil {
		return nil
	}
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

type image struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type seo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type variant struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	AvailableForSale bool                    `json:"availableForSale"`
	SelectedOptions  []domain.SelectedOption `json:"selectedOptions"`
	Price            domain.Money            `json:"price"`
}

type product struct {
	ID               string                 `json:"id"`
	Handle           string                 `json:"handle"`
	AvailableForSale bool                   `json:"availableForSale"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	DescriptionHTML  string                 `json:"descriptionHtml"`
	Options          []domain.ProductOption `json:"options"`
	PriceRange       domain.PriceRange      `json:"priceRange"`
	Variants         *connection[variant]   `json:"variants"`
	FeaturedImage    *image                 `json:"featuredImage"`
	Images           *connection[image]     `json:"images"`
	SEO              *seo                   `json:"seo"`
	Tags             []string               `json:"tags"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

type collection struct {
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SEO         *seo      `json:"seo"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type page struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Handle      string    `json:"handle"`
	Body        string    `json:"body"`
	BodySummary string    `json:"bodySummary"`
	SEO         *seo      `json:"seo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type menuItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type merchandise struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	SelectedOptions []domain.SelectedOption `json:"selectedOptions"`
	Product         *product                `json:"product"`
}

type cartLine struct {
	ID          string              `json:"id"`
	Quantity    int                 `json:"quantity"`
	Cost        domain.CartLineCost `json:"cost"`
	Merchandise merchandise         `json:"merchandise"`
}

type cart struct {
	ID            string                `json:"id"`
	CheckoutURL   string                `json:"checkoutUrl"`
	Cost          domain.CartCost       `json:"cost"`
	Lines         *connection[cartLine] `json:"lines"`
	TotalQuantity int                   `json:"totalQuantity"`
}

type cartPayload struct {
	Cart *cart `json:"cart"`
}
