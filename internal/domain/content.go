package domain

import "time"

// Collection groups products. Path is always /search/<handle>.
type Collection struct {
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SEO         SEO       `json:"seo"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Path        string    `json:"path"`
}

type Page struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Handle      string    `json:"handle"`
	Body        string    `json:"body"`
	BodySummary string    `json:"bodySummary"`
	SEO         SEO       `json:"seo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MenuItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// CollectionPath derives the canonical search path for a collection handle.
func CollectionPath(handle string) string {
	return "/search/" + handle
}

// ProductPath derives the canonical product handle from a raw backend handle.
func ProductPath(handle string) string {
	return "/product/" + handle
}
