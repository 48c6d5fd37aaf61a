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

// EmailDomain is the domain of the synthetic reviewer emails.
const EmailDomain = "example.com"

// BuildUsers extracts one user per distinct reviewer id across all rows.
// The export embeds reviewers as comma-joined user_id/user_name lists; ids
// and names are paired positionally. An id is emitted at most once, the
// first sighting wins even when a later row carries a different name.
// Ids of length two or less are treated as garbage and skipped.
//
// Review count and average rating are synthetic; the export carries no
// per-reviewer data.
func BuildUsers(rows []csvio.Row, rng *rand.Rand, now time.Time) []model.User {
	seen := make(map[string]bool)
	var users []model.User

	for _, row := range rows {
		rawIDs := row.Get("user_id")
		if rawIDs == "" {
			continue
		}

		ids := strings.Split(rawIDs, ",")
		names := strings.Split(row.Get("user_name"), ",")

		for i, rawID := range ids {
			id := strings.TrimSpace(rawID)
			if id == "" || seen[id] || utf8.RuneCountInString(id) <= 2 {
				continue
			}
			seen[id] = true

			name := ""
			if i < len(names) {
				name = names[i]
			}

			users = append(users, model.User{
				UserID:             id,
				Name:               clean.UserName(name),
				Email:              syntheticEmail(id),
				RegistrationDate:   now.Format(time.RFC3339),
				TotalReviews:       rng.Intn(50) + 1,
				AverageRatingGiven: clean.Round1(3.0 + rng.Float64()*2.0),
			})
		}
	}

	return users
}

// syntheticEmail builds a valid address from the lowercased reviewer id
// truncated to eight characters.
func syntheticEmail(id string) string {
	return clean.Truncate(strings.ToLower(id), 8) + "@" + EmailDomain
}
