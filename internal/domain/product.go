package domain

import "time"

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PriceRange struct {
	MaxVariantPrice Money `json:"maxVariantPrice"`
	MinVariantPrice Money `json:"minVariantPrice"`
}

type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ProductVariant struct {
	ID               string           `json:"id"`
	ParentID         string           `json:"parentId,omitempty"`
	Title            string           `json:"title"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
	Price            Money            `json:"price"`
}

// Product is the canonical sellable item. Handle is the routable path
// (/product/<raw-handle>).
type Product struct {
	ID               string           `json:"id"`
	Handle           string           `json:"handle"`
	AvailableForSale bool             `json:"availableForSale"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	DescriptionHTML  string           `json:"descriptionHtml"`
	Options          []ProductOption  `json:"options"`
	PriceRange       PriceRange       `json:"priceRange"`
	Variants         []ProductVariant `json:"variants"`
	FeaturedImage    Image            `json:"featuredImage"`
	Images           []Image          `json:"images"`
	SEO              SEO              `json:"seo"`
	Tags             []string         `json:"tags"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// Variant returns the variant with the given id.
func (p *Product) Variant(id string) (*ProductVariant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

func (p *Product) HasVariant(id string) bool {
	_, ok := p.Variant(id)
	return ok
}

// ProductExtra carries marketing content that does not fit the canonical
// product shape. Keyed by product id.
type ProductExtra struct {
	Subtitle               string          `json:"subtitle,omitempty"`
	KeyIngredients         []KeyIngredient `json:"keyIngredients,omitempty"`
	Badges                 []Badge         `json:"badges,omitempty"`
	ProductDetails         string          `json:"productDetails,omitempty"`
	ProductDetailsImageURL string          `json:"productDetailsImageUrl,omitempty"`
	Texture                string          `json:"texture,omitempty"`
	TextureImageURL        string          `json:"textureImageUrl,omitempty"`
	IngredientsList        string          `json:"ingredientsList,omitempty"`
	IngredientsBgImageURL  string          `json:"ingredientsBgImageUrl,omitempty"`
	HowToUse               string          `json:"howToUse,omitempty"`
	HowToUseImageURL       string          `json:"howToUseImageUrl,omitempty"`
	SuitedFor              []string        `json:"suitedFor,omitempty"`
}

type KeyIngredient struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Badge struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// ProductQuery filters catalog listings. SortKey and Reverse are passed to the
// backend untouched.
type ProductQuery struct {
	Query   string
	SortKey string
	Reverse bool
}

type CollectionProductsQuery struct {
	Collection string
	SortKey    string
	Reverse    bool
}
