// Package model defines the denormalized documents written to the processed
// JSON collections. Field names and nesting match the document-store layout
// exactly, so these structs are the single source of truth for the artifact
// format.
package model

// Category holds the main category and the remaining sub-category path
// segments derived from the pipe-delimited export value.
type Category struct {
	Main string   `json:"main"`
	Sub  []string `json:"sub"`
}

// Pricing holds the cleaned, non-negative price fields of a product.
type Pricing struct {
	DiscountedPrice    float64 `json:"discounted_price"`
	ActualPrice        float64 `json:"actual_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Currency           string  `json:"currency"`
}

// RatingSummary holds the average rating (0-5) and the rating count.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Images holds the product image URLs. The export carries a single URL, so
// thumbnail and main are the same value.
type Images struct {
	Thumbnail string `json:"thumbnail"`
	Main      string `json:"main"`
}

// Product is one document of the products collection, keyed by ProductID.
type Product struct {
	ProductID      string        `json:"product_id"`
	Name           string        `json:"name"`
	Category       Category      `json:"category"`
	Pricing        Pricing       `json:"pricing"`
	Rating         RatingSummary `json:"rating"`
	Description    string        `json:"description"`
	Specifications []string      `json:"specifications"`
	Images         Images        `json:"images"`
	ProductLink    string        `json:"product_link"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
}
