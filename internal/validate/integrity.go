package validate

import (
	"log/slog"
	"math"

	"github.com/globalmarket/analytics-etl/internal/model"
	"github.com/globalmarket/analytics-etl/internal/schema"
)

// orphanReportCap bounds how many orphan references are logged per category.
// The cap affects logging only; every orphan is still counted.
const orphanReportCap = 5

// CheckReviews validates the reviews collection against the master key
// sets. Ratings must be whole numbers in [1, 5]; product and user foreign
// keys must resolve. Returns the combined finding count (schema errors plus
// orphans).
func CheckReviews(reviews []ReviewRecord, productIDs, userIDs KeySet, log *slog.Logger) int {
	findings := 0
	productOrphans := 0
	userOrphans := 0

	for _, r := range reviews {
		if r.Rating != math.Trunc(r.Rating) || r.Rating < 1 || r.Rating > 5 {
			log.Error("invalid review rating", "review_id", r.ReviewID, "rating", r.Rating)
			findings++
		}

		if !productIDs.Contains(r.ProductID) {
			if productOrphans < orphanReportCap {
				log.Warn("review references unknown product", "review_id", r.ReviewID, "product_id", r.ProductID)
			}
			productOrphans++
		}

		if !userIDs.Contains(r.UserID) {
			if userOrphans < orphanReportCap {
				log.Warn("review references unknown user", "review_id", r.ReviewID, "user_id", r.UserID)
			}
			userOrphans++
		}
	}

	if productOrphans+userOrphans > 0 {
		log.Error("orphan references in reviews", "count", productOrphans+userOrphans)
	}

	return findings + productOrphans + userOrphans
}

// CheckSales validates the sales collection: sale id format, closed payment
// and status vocabularies, and foreign keys. The GUEST_USER sentinel is
// exempt from the user existence check. Returns the combined finding count.
func CheckSales(sales []SaleRecord, productIDs, userIDs KeySet, log *slog.Logger) int {
	findings := 0
	productOrphans := 0
	userOrphans := 0

	for _, s := range sales {
		if !schema.SaleIDPattern.MatchString(s.SaleID) {
			log.Error("invalid sale id format", "sale_id", s.SaleID)
			findings++
		}

		if !schema.PaymentMethods.Contains(s.PaymentMethod) {
			log.Error("unknown payment method", "sale_id", s.SaleID, "payment_method", s.PaymentMethod)
			findings++
		}

		if !schema.SaleStatuses.Contains(s.Status) {
			log.Error("unknown sale status", "sale_id", s.SaleID, "status", s.Status)
			findings++
		}

		if !productIDs.Contains(s.ProductID) {
			if productOrphans < orphanReportCap {
				log.Warn("sale references unknown product", "sale_id", s.SaleID, "product_id", s.ProductID)
			}
			productOrphans++
		}

		if s.UserID != model.GuestUser && !userIDs.Contains(s.UserID) {
			if userOrphans < orphanReportCap {
				log.Warn("sale references unknown user", "sale_id", s.SaleID, "user_id", s.UserID)
			}
			userOrphans++
		}
	}

	if productOrphans+userOrphans > 0 {
		log.Error("orphan references in sales", "count", productOrphans+userOrphans)
	}

	return findings + productOrphans + userOrphans
}
