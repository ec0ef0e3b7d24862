package demo

import (
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// ProductSeed describes one demo product before it is expanded into the
// canonical shape.
type ProductSeed struct {
	ID          string
	Title       string
	Description string
	Price       string
	CompareAt   string
	Background  string
	Foreground  string
	ImageText   string
	ImageURLs   []string
	Tags        []string
}

const (
	imageSize = 800

	HeaderMenuHandle = "next-js-frontend-header-menu"
	FooterMenuHandle = "next-js-frontend-footer-menu"
)

// MakeProduct expands a seed into a product with three size variants:
// the compare-at price for 30 ml, the list price for 50 ml and 1.6x list for 100 ml.
func MakeProduct(s ProductSeed, now time.Time) domain.Product {
	images := seedImages(s)
	price := domain.NewMoney(s.Price, domain.DefaultCurrency)
	minPrice := price
	if s.CompareAt != "" {
		minPrice = domain.NewMoney(s.CompareAt, domain.DefaultCurrency)
	}
	large := domain.Money{
		Amount:       price.Amount.Mul(decimal.RequireFromString("1.6")).Round(2),
		CurrencyCode: domain.DefaultCurrency,
	}

	tags := s.Tags
	if len(tags) == 0 {
		tags = []string{"sensitive skin", "skincare"}
	}

	return domain.Product{
		ID:               s.ID,
		Handle:           domain.ProductPath(s.ID),
		AvailableForSale: true,
		Title:            s.Title,
		Description:      s.Description,
		DescriptionHTML:  "<p>" + s.Description + "</p>",
		Options: []domain.ProductOption{
			{ID: "size", Name: "Size", Values: []string{"30 ml", "50 ml", "100 ml"}},
		},
		PriceRange: domain.PriceRange{
			MaxVariantPrice: price,
			MinVariantPrice: minPrice,
		},
		Variants: []domain.ProductVariant{
			sizeVariant(s.ID, "v1", "30 ml", minPrice),
			sizeVariant(s.ID, "v2", "50 ml", price),
			sizeVariant(s.ID, "v3", "100 ml", large),
		},
		FeaturedImage: images[0],
		Images:        images,
		SEO:           domain.SEO{Title: s.Title, Description: s.Description},
		Tags:          tags,
		UpdatedAt:     now,
	}
}

func sizeVariant(productID, suffix, size string, price domain.Money) domain.ProductVariant {
	return domain.ProductVariant{
		ID:               productID + "-" + suffix,
		ParentID:         productID,
		Title:            size,
		AvailableForSale: true,
		SelectedOptions:  []domain.SelectedOption{{Name: "Size", Value: size}},
		Price:            price,
	}
}

func seedImages(s ProductSeed) []domain.Image {
	if len(s.ImageURLs) == 0 {
		return []domain.Image{placeholder(s.Background, s.Foreground, s.ImageText)}
	}
	images := make([]domain.Image, 0, len(s.ImageURLs))
	for i, u := range s.ImageURLs {
		alt := s.Title
		if i > 0 {
			alt = fmt.Sprintf("%s - image %d", s.Title, i+1)
		}
		images = append(images, domain.Image{URL: u, AltText: alt, Width: imageSize, Height: imageSize})
	}
	return images
}

func placeholder(bg, fg, text string) domain.Image {
	if bg == "" {
		bg = "eeeeee"
	}
	if fg == "" {
		fg = "333333"
	}
	return domain.Image{
		URL:     fmt.Sprintf("https://placehold.co/800x800/%s/%s?text=%s", bg, fg, url.QueryEscape(text)),
		AltText: text,
		Width:   imageSize,
		Height:  imageSize,
	}
}

var productSeeds = []ProductSeed{
	{
		ID:          "1",
		Title:       "Hyalu-Cica Water-Fit Sun Serum UV 50ml",
		Description: "A lightweight serum-like sunscreen that hydrates and soothes the skin for a fresh, no white cast finish. Reformulated with Panthenol and extracts of rice, oat, and soybean to help maintain hydration and comfort.",
		Price:       "34.00",
		CompareAt:   "28.00",
		Background:  "fce4ec",
		Foreground:  "880e4f",
		ImageText:   "Sun Serum",
		Tags:        []string{"serum", "sensitive skin"},
		ImageURLs: []string{
			"https://www.skin1004.com/cdn/shop/files/skin1004-50ml-hyalu-cica-water-fit-sun-serum-uv-1204112543_1440x.png?v=1762764544",
			"https://www.skin1004.com/cdn/shop/files/skin1004-50ml-hyalu-cica-water-fit-sun-serum-uv-1204822257_1440x.jpg?v=1763095744",
			"https://www.skin1004.com/cdn/shop/files/skin1004-50ml-hyalu-cica-water-fit-sun-serum-uv-1204112540_1440x.png?v=1763091245",
		},
	},
	{
		ID:          "2",
		Title:       "Hydra-Soothe Serum",
		Description: "A lightweight, fragrance-free serum powered by hyaluronic acid and centella asiatica. Deeply hydrates and calms redness in one step.",
		Price:       "52.00",
		CompareAt:   "44.00",
		Background:  "ede7f6",
		Foreground:  "4a148c",
		ImageText:   "Hydra Serum",
		Tags:        []string{"serum", "hydrating", "sensitive skin"},
	},
	{
		ID:          "3",
		Title:       "Barrier Repair Moisturizer",
		Description: "Rich yet non-greasy moisturizer with ceramides, squalane, and aloe vera. Rebuilds the skin barrier overnight and locks in moisture for 72 hours.",
		Price:       "46.00",
		CompareAt:   "38.00",
		Background:  "e8f5e9",
		Foreground:  "1b5e20",
		ImageText:   "Moisturizer",
		Tags:        []string{"moisturizer", "barrier repair", "sensitive skin"},
	},
	{
		ID:          "4",
		Title:       "Mineral Sunscreen SPF 50",
		Description: "Zinc-oxide mineral sunscreen with a silky, invisible finish. Broad-spectrum SPF 50 protection without the white cast, made for reactive skin.",
		Price:       "38.00",
		CompareAt:   "32.00",
		Background:  "fff8e1",
		Foreground:  "e65100",
		ImageText:   "SPF 50",
		Tags:        []string{"sunscreen", "SPF", "sensitive skin"},
	},
	{
		ID:          "5",
		Title:       "Redness Relief Toner",
		Description: "Alcohol-free toner infused with niacinamide and green tea to visibly reduce redness and refine pore appearance. Preps skin for serums and moisturizers.",
		Price:       "29.00",
		CompareAt:   "24.00",
		Background:  "e0f2f1",
		Foreground:  "004d40",
		ImageText:   "Toner",
		Tags:        []string{"toner", "redness relief", "sensitive skin"},
	},
	{
		ID:          "6",
		Title:       "Gentle Eye Cream",
		Description: "Ultra-gentle eye cream with peptides and caffeine to brighten dark circles and smooth fine lines. Ophthalmologist tested and fragrance-free.",
		Price:       "42.00",
		CompareAt:   "36.00",
		Background:  "f3e5f5",
		Foreground:  "6a1b9a",
		ImageText:   "Eye Cream",
		Tags:        []string{"eye cream", "anti-aging", "sensitive skin"},
	},
	{
		ID:          "7",
		Title:       "Overnight Recovery Mask",
		Description: "A leave-on sleeping mask with bakuchiol and marshmallow root. Wake up to plumper, calmer skin without a trace of irritation.",
		Price:       "48.00",
		CompareAt:   "40.00",
		Background:  "fce4ec",
		Foreground:  "ad1457",
		ImageText:   "Sleep Mask",
		Tags:        []string{"mask", "overnight", "sensitive skin"},
	},
	{
		ID:          "8",
		Title:       "Micellar Cleansing Water",
		Description: "No-rinse micellar water that gently lifts makeup and impurities in a single swipe. Zero fragrance, zero alcohol, just clean and calm skin.",
		Price:       "22.00",
		CompareAt:   "18.00",
		Background:  "e3f2fd",
		Foreground:  "0d47a1",
		ImageText:   "Micellar Water",
		Tags:        []string{"cleanser", "micellar", "sensitive skin"},
	},
}

var headerMenu = []domain.MenuItem{
	{Title: "All Products", Path: "/search"},
	{Title: "Cleansers", Path: "/search/cleansers"},
	{Title: "Serums", Path: "/search/serums"},
	{Title: "Moisturizers", Path: "/search/moisturizers"},
}

var footerMenu = []domain.MenuItem{
	{Title: "About AuraGlow", Path: "/about"},
	{Title: "Ingredients", Path: "/ingredients"},
	{Title: "Shipping & Returns", Path: "/shipping"},
	{Title: "Privacy Policy", Path: "/privacy"},
}

// collectionTags maps a collection handle to the tag keywords its products carry.
var collectionTags = map[string][]string{
	"cleansers":    {"cleanser", "micellar"},
	"serums":       {"serum"},
	"moisturizers": {"moisturizer", "barrier repair"},
	"sun-care":     {"sunscreen", "spf"},
}

const homepageCollectionPrefix = "hidden-homepage-"

func seedCollections(now time.Time) []domain.Collection {
	type c struct{ handle, title, desc, seoDesc string }
	raw := []c{
		{"cleansers", "Cleansers", "Gentle, sulfate-free cleansers formulated for sensitive and reactive skin.", "Gentle cleansers for sensitive skin."},
		{"serums", "Serums", "Targeted treatments that calm, hydrate, and repair without irritation.", "Soothing serums for sensitive skin."},
		{"moisturizers", "Moisturizers", "Barrier-boosting moisturizers that keep sensitive skin hydrated and protected.", "Moisturizers for sensitive skin."},
		{"sun-care", "Sun Care", "Mineral-based sun protection designed for the most delicate skin.", "Mineral sunscreens for sensitive skin."},
	}
	out := make([]domain.Collection, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.Collection{
			Handle:      r.handle,
			Title:       r.title,
			Description: r.desc,
			SEO:         domain.SEO{Title: r.title + " | AuraGlow", Description: r.seoDesc},
			UpdatedAt:   now,
			Path:        domain.CollectionPath(r.handle),
		})
	}
	return out
}

func seedPages(now time.Time) []domain.Page {
	return []domain.Page{
		{
			ID:     "1",
			Title:  "About AuraGlow",
			Handle: "about",
			Body: `<h1>About AuraGlow</h1>
<p>AuraGlow was founded on a simple belief: sensitive skin deserves high-performance skincare without compromise. Every formula is dermatologist-tested, fragrance-free, and cruelty-free.</p>`,
			BodySummary: "Clean, gentle skincare for sensitive skin.",
			SEO:         domain.SEO{Title: "About | AuraGlow", Description: "Learn about AuraGlow, skincare for sensitive skin."},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:     "2",
			Title:  "Our Ingredients",
			Handle: "ingredients",
			Body: `<h1>Our Ingredients</h1>
<p>We never use sulfates, parabens, synthetic fragrance, or harsh alcohols.</p>
<ul>
<li><strong>Ceramides</strong> rebuild and protect the skin barrier.</li>
<li><strong>Centella Asiatica</strong> calms redness and promotes healing.</li>
<li><strong>Niacinamide</strong> reduces pores and evens skin tone.</li>
</ul>`,
			BodySummary: "Clean ingredients your sensitive skin will love.",
			SEO:         domain.SEO{Title: "Ingredients | AuraGlow", Description: "What goes into every AuraGlow product."},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
