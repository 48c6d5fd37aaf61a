// Package schema defines the shape of the raw sales export and the closed
// vocabularies shared by the transform and validation pipelines.
package schema

import (
	"fmt"
	"strings"
)

// Column describes one expected column of the raw sales export.
type Column struct {
	Name     string // Header name (lowercase, must match CSV exactly)
	Required bool   // Column must exist in the CSV header
}

// SalesExportColumns defines the expected columns of the flat sales export.
// The export denormalizes reviews into the product rows: user_id, user_name,
// review_id, review_title and review_content hold comma-joined lists.
var SalesExportColumns = []Column{
	{Name: "product_id", Required: true},
	{Name: "product_name", Required: true},
	{Name: "category", Required: true},
	{Name: "discounted_price", Required: true},
	{Name: "actual_price", Required: true},
	{Name: "discount_percentage", Required: true},
	{Name: "rating", Required: true},
	{Name: "rating_count", Required: true},
	{Name: "about_product", Required: true},
	{Name: "img_link", Required: true},
	{Name: "product_link", Required: true},
	{Name: "user_id", Required: true},
	{Name: "user_name", Required: true},
	{Name: "review_id", Required: true},
	{Name: "review_title", Required: true},
	{Name: "review_content", Required: true},
}

// ValidateHeader checks that all required export columns exist in the CSV
// header. Header names are matched case-insensitively.
func ValidateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.ToLower(strings.TrimSpace(h))] = true
	}

	var missing []string
	for _, col := range SalesExportColumns {
		if col.Required && !present[col.Name] {
			missing = append(missing, col.Name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
