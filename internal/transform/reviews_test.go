package transform

import (
	"math/rand"
	"testing"

	"github.com/globalmarket/analytics-etl/internal/csvio"
	"github.com/globalmarket/analytics-etl/internal/model"
)

// ============================================================================
// BuildReviews Tests
// ============================================================================

func TestBuildReviews_GlobalDeduplication(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := []csvio.Row{
		{"product_id": "B001", "review_id": "R1,R2", "review_title": "Good,Bad", "review_content": "x,y", "user_id": "USER_A,USER_B"},
		{"product_id": "B002", "review_id": "R2,R3", "review_title": "Dup,New", "review_content": "z,w", "user_id": "USER_C,USER_D"},
	}

	reviews := BuildReviews(rows, rng, testNow)

	if len(reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(reviews))
	}
	if reviews[1].ReviewID != "R2" || reviews[1].ProductID != "B001" {
		t.Errorf("expected first occurrence of R2 to win, got %+v", reviews[1])
	}
	if reviews[2].ReviewID != "R3" || reviews[2].ProductID != "B002" {
		t.Errorf("unexpected third review: %+v", reviews[2])
	}
}

func TestBuildReviews_PositionalPairing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := []csvio.Row{
		{"product_id": "B001", "review_id": "R1,R2", "review_title": "Only Title", "review_content": "Only Content", "user_id": "USER_A"},
	}

	reviews := BuildReviews(rows, rng, testNow)

	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}

	first := reviews[0]
	if first.Title != "Only Title" || first.Content != "Only Content" || first.UserID != "USER_A" {
		t.Errorf("unexpected first review: %+v", first)
	}

	// Second review has no positional title, content or user.
	second := reviews[1]
	if second.Title != DefaultReviewTitle {
		t.Errorf("expected default title, got %q", second.Title)
	}
	if second.Content != "" {
		t.Errorf("expected empty content, got %q", second.Content)
	}
	if second.UserID != model.AnonymousUser {
		t.Errorf("expected %s, got %q", model.AnonymousUser, second.UserID)
	}
}

func TestBuildReviews_SyntheticFields(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := []csvio.Row{
		{"product_id": "B001", "review_id": "R1", "user_id": "USER_A"},
	}

	reviews := BuildReviews(rows, rng, testNow)
	r := reviews[0]

	if r.Rating < 3 || r.Rating > 5 {
		t.Errorf("rating out of range: %d", r.Rating)
	}
	if r.HelpfulCount < 0 || r.HelpfulCount > 100 {
		t.Errorf("helpful count out of range: %d", r.HelpfulCount)
	}
	if r.Images == nil || len(r.Images) != 0 {
		t.Errorf("expected empty (non-nil) images, got %v", r.Images)
	}
	if r.ReviewDate == "" {
		t.Error("expected review date to be set")
	}
}

func TestBuildReviews_SkipsRowsWithoutIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := []csvio.Row{
		{"product_id": "B001"},
		{"product_id": "B002", "review_id": ""},
	}

	if reviews := BuildReviews(rows, rng, testNow); len(reviews) != 0 {
		t.Errorf("expected no reviews, got %d", len(reviews))
	}
}

// ============================================================================
// resolveReviewer Tests
// ============================================================================

func TestResolveReviewer(t *testing.T) {
	tests := []struct {
		name    string
		userIDs []string
		i       int
		want    string
	}{
		{"valid id", []string{"USER_A"}, 0, "USER_A"},
		{"trimmed", []string{"  USER_B  "}, 0, "USER_B"},
		{"index past end", []string{"USER_A"}, 1, model.AnonymousUser},
		{"too short", []string{"ab"}, 0, model.AnonymousUser},
		{"exactly three chars", []string{"abc"}, 0, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveReviewer(tt.userIDs, tt.i); got != tt.want {
				t.Errorf("resolveReviewer(%v, %d) = %q, want %q", tt.userIDs, tt.i, got, tt.want)
			}
		})
	}
}
