package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/globalmarket/analytics-etl/internal/model"
)

func writeArtifact(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// ============================================================================
// Run Tests
// ============================================================================

func TestRun_ConsistentCollections(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, model.ProductsFile, `[
		{"product_id": "B001", "pricing": {"discounted_price": 199.0, "actual_price": 299.0}, "rating": {"average": 4.2}}
	]`)
	writeArtifact(t, dir, model.UsersFile, `[
		{"user_id": "USER_A", "email": "user_a@example.com"}
	]`)
	writeArtifact(t, dir, model.ReviewsFile, `[
		{"review_id": "R1", "product_id": "B001", "user_id": "USER_A", "rating": 5}
	]`)
	writeArtifact(t, dir, model.SalesFile, `[
		{"sale_id": "SALE-2024-000001", "product_id": "B001", "user_id": "USER_A", "payment_method": "upi", "status": "completed"},
		{"sale_id": "SALE-2024-000002", "product_id": "B001", "user_id": "GUEST_USER", "payment_method": "credit_card", "status": "pending"}
	]`)

	summary, err := Run(dir, discardLogger())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Total() != 0 {
		t.Errorf("expected clean summary, got %+v", summary)
	}
}

func TestRun_CountsFindingsPerCollection(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, model.ProductsFile, `[
		{"product_id": "B001", "pricing": {"discounted_price": -1.0, "actual_price": 299.0}, "rating": {"average": 4.2}}
	]`)
	writeArtifact(t, dir, model.UsersFile, `[
		{"user_id": "USER_A", "email": "broken"}
	]`)
	writeArtifact(t, dir, model.ReviewsFile, `[
		{"review_id": "R1", "product_id": "B404", "user_id": "USER_A", "rating": 5}
	]`)
	writeArtifact(t, dir, model.SalesFile, `[
		{"sale_id": "SALE-2024-000001", "product_id": "B001", "user_id": "USER_404", "payment_method": "upi", "status": "completed"}
	]`)

	summary, err := Run(dir, discardLogger())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if summary.Products != 1 {
		t.Errorf("products findings = %d, want 1", summary.Products)
	}
	if summary.Users != 1 {
		t.Errorf("users findings = %d, want 1", summary.Users)
	}
	if summary.Reviews != 1 {
		t.Errorf("reviews findings = %d, want 1", summary.Reviews)
	}
	if summary.Sales != 1 {
		t.Errorf("sales findings = %d, want 1", summary.Sales)
	}
	if summary.Total() != 4 {
		t.Errorf("total = %d, want 4", summary.Total())
	}
}

func TestRun_MissingCollectionIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, model.ProductsFile, `[]`)
	writeArtifact(t, dir, model.UsersFile, `[]`)
	writeArtifact(t, dir, model.ReviewsFile, `[]`)
	// sales.json deliberately absent

	if _, err := Run(dir, discardLogger()); err == nil {
		t.Fatal("expected error for missing collection, got nil")
	}
}

func TestRun_InvalidJSONIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, model.ProductsFile, `{not json`)
	writeArtifact(t, dir, model.UsersFile, `[]`)
	writeArtifact(t, dir, model.ReviewsFile, `[]`)
	writeArtifact(t, dir, model.SalesFile, `[]`)

	if _, err := Run(dir, discardLogger()); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}
