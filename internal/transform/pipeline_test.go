package transform

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/globalmarket/analytics-etl/internal/config"
	"github.com/globalmarket/analytics-etl/internal/model"
)

const exportHeader = "product_id,product_name,category,discounted_price,actual_price,discount_percentage,rating,rating_count,about_product,user_id,user_name,review_id,review_title,review_content,img_link,product_link"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeExport(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	body := strings.Join(append([]string{exportHeader}, lines...), "\n") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing export: %v", err)
	}
	return path
}

// ============================================================================
// Pipeline Tests
// ============================================================================

func TestRun_ProducesAllArtifacts(t *testing.T) {
	csvPath := writeExport(t,
		`B001,USB Cable,Electronics|Cables,"₹199","₹499",60%,4.2,"1,234",Durable|Fast charging,"USER_A,USER_B","Asha,Bala","R1,R2","Good,Okay","Works well,Does the job",https://img.example/b001.jpg,https://example.com/b001`,
		`B002,Charger,Electronics,"₹899","₹1,499",40%,4.0,987,Compact,USER_C,Chitra,R3,Solid,Charges fast,https://img.example/b002.jpg,https://example.com/b002`,
	)
	outDir := filepath.Join(t.TempDir(), "processed")

	cfg := &config.Config{}
	cfg.Input.CSVPath = csvPath
	cfg.Output.Dir = outDir
	cfg.Sales.Count = 10

	rng := rand.New(rand.NewSource(1))
	if err := Run(cfg, rng, testNow, discardLogger()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var products []model.Product
	readArtifact(t, filepath.Join(outDir, model.ProductsFile), &products)
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}

	var users []model.User
	readArtifact(t, filepath.Join(outDir, model.UsersFile), &users)
	if len(users) != 3 {
		t.Errorf("expected 3 users, got %d", len(users))
	}

	var reviews []model.Review
	readArtifact(t, filepath.Join(outDir, model.ReviewsFile), &reviews)
	if len(reviews) != 3 {
		t.Errorf("expected 3 reviews, got %d", len(reviews))
	}

	var sales []model.Sale
	readArtifact(t, filepath.Join(outDir, model.SalesFile), &sales)
	if len(sales) != 10 {
		t.Errorf("expected 10 sales, got %d", len(sales))
	}
}

func TestRun_MissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte("product_id,product_name\nB001,Cable\n"), 0o644); err != nil {
		t.Fatalf("writing export: %v", err)
	}

	cfg := &config.Config{}
	cfg.Input.CSVPath = path
	cfg.Output.Dir = t.TempDir()
	cfg.Sales.Count = 5

	err := Run(cfg, rand.New(rand.NewSource(1)), testNow, discardLogger())
	if err == nil {
		t.Fatal("expected error for missing columns, got nil")
	}
	if !strings.Contains(err.Error(), "missing required columns") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Input.CSVPath = filepath.Join(t.TempDir(), "absent.csv")
	cfg.Output.Dir = t.TempDir()

	if err := Run(cfg, rand.New(rand.NewSource(1)), testNow, discardLogger()); err == nil {
		t.Fatal("expected error for missing input, got nil")
	}
}

func readArtifact(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
}

// ============================================================================
// WriteCollection Tests
// ============================================================================

func TestWriteCollection_PreservesNonASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	records := []map[string]string{{"name": "Boult Audio ProBass ₹499 & more"}}
	if err := WriteCollection(path, records); err != nil {
		t.Fatalf("WriteCollection returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}

	if !strings.Contains(string(data), "₹499 & more") {
		t.Errorf("expected non-ASCII text preserved verbatim, got %s", data)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("expected two-space indented output")
	}
}
