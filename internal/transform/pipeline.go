package transform

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/globalmarket/analytics-etl/internal/config"
	"github.com/globalmarket/analytics-etl/internal/csvio"
	"github.com/globalmarket/analytics-etl/internal/model"
	"github.com/globalmarket/analytics-etl/internal/schema"
)

// Run executes the whole transform pipeline: read the export, build the
// four collections, write the JSON artifacts. Per-record problems are
// absorbed by the builders; an error return means the run as a whole
// failed (unreadable input, missing columns, unwritable output).
func Run(cfg *config.Config, rng *rand.Rand, now time.Time, log *slog.Logger) error {
	table, err := csvio.ReadFile(cfg.Input.CSVPath)
	if err != nil {
		return err
	}
	if err := schema.ValidateHeader(table.Header); err != nil {
		return fmt.Errorf("header check for %s: %w", cfg.Input.CSVPath, err)
	}
	if table.Skipped > 0 {
		log.Warn("skipped malformed lines", "count", table.Skipped)
	}
	log.Info("export loaded", "path", cfg.Input.CSVPath, "rows", len(table.Rows))

	products := BuildProducts(table.Rows, now)
	users := BuildUsers(table.Rows, rng, now)
	reviews := BuildReviews(table.Rows, rng, now)
	sales := GenerateSales(table.Rows, cfg.Sales.Count, rng, now)

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cfg.Output.Dir, err)
	}

	collections := []struct {
		file    string
		records any
		count   int
	}{
		{model.ProductsFile, products, len(products)},
		{model.UsersFile, users, len(users)},
		{model.ReviewsFile, reviews, len(reviews)},
		{model.SalesFile, sales, len(sales)},
	}

	for _, c := range collections {
		path := filepath.Join(cfg.Output.Dir, c.file)
		if err := WriteCollection(path, c.records); err != nil {
			return err
		}
		log.Info("collection saved", "file", c.file, "records", c.count)
	}

	return nil
}
