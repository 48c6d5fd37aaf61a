// Package transform builds the four denormalized collections from the raw
// sales export and writes them as JSON artifacts.
//
// All builders are single-pass and keep their deduplication state local to
// one call, so a pipeline run never leaks state into the next. Randomized
// fields flow through an injected *rand.Rand and timestamps through an
// injected now, which keeps tests deterministic.
package transform

import (
	"strings"
	"time"

	"github.com/globalmarket/analytics-etl/internal/clean"
	"github.com/globalmarket/analytics-etl/internal/csvio"
	"github.com/globalmarket/analytics-etl/internal/model"
)

// UncategorizedMain is the category assigned to rows with no category value.
const UncategorizedMain = "Uncategorized"

// BuildProducts builds one product per distinct product_id. Rows are grouped
// by id and the first row of each group wins; later duplicates are dropped,
// even if they differ. Rows without a product id produce nothing.
//
// The sanitizers are total, so a malformed row degrades to defaults instead
// of aborting the run.
func BuildProducts(rows []csvio.Row, now time.Time) []model.Product {
	seen := make(map[string]bool, len(rows))
	products := make([]model.Product, 0, len(rows))

	for _, row := range rows {
		id := row.Get("product_id")
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		products = append(products, buildProduct(id, row, now))
	}

	return products
}

func buildProduct(id string, row csvio.Row, now time.Time) model.Product {
	description := row.Get("about_product")
	img := row.Get("img_link")
	ts := now.Format(time.RFC3339)

	return model.Product{
		ProductID:   id,
		Name:        clean.Truncate(strings.TrimSpace(row.Get("product_name")), 500),
		Category:    splitCategory(row.Get("category")),
		Pricing: model.Pricing{
			DiscountedPrice:    clean.Currency(row.Get("discounted_price")),
			ActualPrice:        clean.Currency(row.Get("actual_price")),
			DiscountPercentage: clean.Percent(row.Get("discount_percentage")),
			Currency:           "INR",
		},
		Rating: model.RatingSummary{
			Average: clean.Rating(row.Get("rating")),
			Count:   clean.Int(row.Get("rating_count")),
		},
		Description:    clean.Truncate(description, 1000),
		Specifications: splitSpecifications(description),
		Images:         model.Images{Thumbnail: img, Main: img},
		ProductLink:    row.Get("product_link"),
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
}

// splitCategory derives main/sub categories from the pipe-delimited export
// value. The first segment is the main category; the remaining segments form
// the sub-category path. An absent value maps to UncategorizedMain.
func splitCategory(raw string) model.Category {
	if strings.TrimSpace(raw) == "" {
		return model.Category{Main: UncategorizedMain, Sub: []string{}}
	}

	segments := strings.Split(raw, "|")
	sub := make([]string, 0, len(segments)-1)
	for _, s := range segments[1:] {
		sub = append(sub, strings.TrimSpace(s))
	}

	return model.Category{Main: strings.TrimSpace(segments[0]), Sub: sub}
}

// splitSpecifications splits the untruncated description on "|". The
// description field itself is truncated to 1000 characters, but the
// specification list is derived from the full value.
func splitSpecifications(description string) []string {
	if description == "" {
		return []string{}
	}
	return strings.Split(description, "|")
}
