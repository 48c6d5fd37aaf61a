package transform

import (
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/globalmarket/analytics-etl/internal/clean"
	"github.com/globalmarket/analytics-etl/internal/csvio"
	"github.com/globalmarket/analytics-etl/internal/model"
)

// DefaultReviewTitle fills in when a row's title list is shorter than its
// review id list.
const DefaultReviewTitle = "Review"

// BuildReviews extracts reviews from the comma-joined review_id /
// review_title / review_content lists, paired positionally with the row's
// user_id list. Review ids are deduplicated globally across rows; the first
// occurrence wins.
//
// The reviewer id resolves positionally and falls back to the ANONYMOUS
// sentinel when absent or shorter than three characters. Rating, helpful
// count and the verified flag are synthetic; the export carries no
// per-review numeric data.
func BuildReviews(rows []csvio.Row, rng *rand.Rand, now time.Time) []model.Review {
	seen := make(map[string]bool)
	var reviews []model.Review

	for _, row := range rows {
		rawIDs := row.Get("review_id")
		if rawIDs == "" {
			continue
		}

		ids := strings.Split(rawIDs, ",")
		titles := strings.Split(row.Get("review_title"), ",")
		contents := strings.Split(row.Get("review_content"), ",")
		userIDs := strings.Split(row.Get("user_id"), ",")

		for i, rawID := range ids {
			id := strings.TrimSpace(rawID)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true

			reviews = append(reviews, model.Review{
				ReviewID:         id,
				ProductID:        row.Get("product_id"),
				UserID:           resolveReviewer(userIDs, i),
				Title:            positional(titles, i, DefaultReviewTitle, 200),
				Content:          positional(contents, i, "", 5000),
				Rating:           rng.Intn(3) + 3,
				HelpfulCount:     rng.Intn(101),
				VerifiedPurchase: rng.Intn(2) == 1,
				ReviewDate:       now.Format(time.RFC3339),
				Images:           []string{},
			})
		}
	}

	return reviews
}

// resolveReviewer returns the trimmed user id at position i, or the
// ANONYMOUS sentinel when the list is shorter or the id has fewer than
// three characters.
func resolveReviewer(userIDs []string, i int) string {
	if i >= len(userIDs) {
		return model.AnonymousUser
	}
	id := strings.TrimSpace(userIDs[i])
	if utf8.RuneCountInString(id) < 3 {
		return model.AnonymousUser
	}
	return id
}

// positional returns the trimmed, truncated value at position i, or fallback
// when the list is shorter.
func positional(values []string, i int, fallback string, limit int) string {
	if i >= len(values) {
		return fallback
	}
	return clean.Truncate(strings.TrimSpace(values[i]), limit)
}
