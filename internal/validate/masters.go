package validate

import (
	"log/slog"

	"github.com/globalmarket/analytics-etl/internal/schema"
)

// CheckProducts runs the schema checks over the products collection:
// duplicate primary keys, negative (or absent) prices, and average ratings
// outside [0, 5]. Findings are logged and counted, never repaired; a
// duplicate id still joins the returned key set.
func CheckProducts(products []ProductRecord, log *slog.Logger) (KeySet, int) {
	findings := 0
	keys := make(KeySet, len(products))

	for _, p := range products {
		if keys.Contains(p.ProductID) {
			log.Error("duplicate product id", "product_id", p.ProductID)
			findings++
		}
		keys[p.ProductID] = struct{}{}

		if badPrice(p.Pricing.DiscountedPrice) || badPrice(p.Pricing.ActualPrice) {
			log.Error("negative price", "product_id", p.ProductID)
			findings++
		}

		if p.Rating.Average < 0 || p.Rating.Average > 5 {
			log.Error("rating out of range", "product_id", p.ProductID, "average", p.Rating.Average)
			findings++
		}
	}

	return keys, findings
}

// CheckUsers runs the schema checks over the users collection: duplicate
// primary keys and malformed email addresses.
func CheckUsers(users []UserRecord, log *slog.Logger) (KeySet, int) {
	findings := 0
	keys := make(KeySet, len(users))

	for _, u := range users {
		if keys.Contains(u.UserID) {
			log.Error("duplicate user id", "user_id", u.UserID)
			findings++
		}
		keys[u.UserID] = struct{}{}

		if !schema.EmailPattern.MatchString(u.Email) {
			log.Error("invalid email format", "user_id", u.UserID, "email", u.Email)
			findings++
		}
	}

	return keys, findings
}

// badPrice reports whether a price field is missing or negative. A product
// without a price field is a schema violation, not a free product.
func badPrice(v *float64) bool {
	return v == nil || *v < 0
}
