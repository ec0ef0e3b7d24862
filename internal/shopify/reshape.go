package shopify

import (
	"net/url"
	"strings"

	"storefront/internal/domain"
)

func reshapeImage(img image) domain.Image {
	return domain.Image{URL: img.URL, AltText: img.AltText, Width: img.Width, Height: img.Height}
}

func reshapeImages(c *connection[image]) []domain.Image {
	nodes := c.nodes()
	out := make([]domain.Image, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, reshapeImage(n))
	}
	return out
}

func reshapeSEO(s *seo, title, description string) domain.SEO {
	out := domain.SEO{Title: title, Description: description}
	if s == nil {
		return out
	}
	if s.Title != "" {
		out.Title = s.Title
	}
	if s.Description != "" {
		out.Description = s.Description
	}
	return out
}

func reshapeProduct(p product) domain.Product {
	images := reshapeImages(p.Images)

	var featured domain.Image
	switch {
	case len(images) > 0:
		featured = images[0]
	case p.FeaturedImage != nil:
		featured = reshapeImage(*p.FeaturedImage)
	}

	natives := p.Variants.nodes()
	variants := make([]domain.ProductVariant, 0, len(natives))
	for _, v := range natives {
		variants = append(variants, domain.ProductVariant{
			ID:               v.ID,
			ParentID:         p.ID,
			Title:            v.Title,
			AvailableForSale: v.AvailableForSale,
			SelectedOptions:  nonNil(v.SelectedOptions),
			Price:            v.Price,
		})
	}

	return domain.Product{
		ID:               p.ID,
		Handle:           domain.ProductPath(p.Handle),
		AvailableForSale: p.AvailableForSale,
		Title:            p.Title,
		Description:      p.Description,
		DescriptionHTML:  p.DescriptionHTML,
		Options:          nonNil(p.Options),
		PriceRange:       p.PriceRange,
		Variants:         variants,
		FeaturedImage:    featured,
		Images:           images,
		SEO:              reshapeSEO(p.SEO, p.Title, p.Description),
		Tags:             nonNil(p.Tags),
		UpdatedAt:        p.UpdatedAt,
	}
}

func reshapeProducts(nodes []product) []domain.Product {
	out := make([]domain.Product, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, reshapeProduct(n))
	}
	return out
}

func reshapeCollection(c collection) domain.Collection {
	return domain.Collection{
		Handle:      c.Handle,
		Title:       c.Title,
		Description: c.Description,
		SEO:         reshapeSEO(c.SEO, c.Title, c.Description),
		UpdatedAt:   c.UpdatedAt,
		Path:        domain.CollectionPath(c.Handle),
	}
}

func reshapePage(p page) domain.Page {
	return domain.Page{
		ID:          p.ID,
		Title:       p.Title,
		Handle:      p.Handle,
		Body:        p.Body,
		BodySummary: p.BodySummary,
		SEO:         reshapeSEO(p.SEO, p.Title, p.BodySummary),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func reshapeCart(c cart) domain.Cart {
	natives := c.Lines.nodes()
	lines := make([]domain.CartLine, 0, len(natives))
	for _, l := range natives {
		m := domain.Merchandise{
			ID:              l.Merchandise.ID,
			Title:           l.Merchandise.Title,
			SelectedOptions: nonNil(l.Merchandise.SelectedOptions),
		}
		if l.Merchandise.Product != nil {
			p := reshapeProduct(*l.Merchandise.Product)
			m.ProductID = p.ID
			m.Product = &p
		}
		lines = append(lines, domain.CartLine{
			ID:          l.ID,
			Quantity:    l.Quantity,
			Cost:        l.Cost,
			Merchandise: m,
		})
	}
	return domain.Cart{
		ID:            c.ID,
		CheckoutURL:   c.CheckoutURL,
		Cost:          c.Cost,
		Lines:         lines,
		TotalQuantity: c.TotalQuantity,
	}
}

// menuPath rewrites a storefront URL into the canonical route scheme.
// Relative URLs resolve against the store domain.
func menuPath(raw, storeDomain string) string {
	base := &url.URL{Scheme: "https", Host: storeDomain}
	u, err := base.Parse(raw)
	if err != nil {
		return raw
	}
	path := u.Path
	if path == "/collections" {
		return "/search"
	}
	path = strings.Replace(path, "/collections/", "/search/", 1)
	path = strings.Replace(path, "/pages/", "/", 1)
	return path
}

func reshapeMenu(items []menuItem, storeDomain string) []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.MenuItem{Title: it.Title, Path: menuPath(it.URL, storeDomain)})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
