package validate

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/globalmarket/analytics-etl/internal/model"
)

// Summary aggregates the finding counts per collection.
type Summary struct {
	Products int
	Users    int
	Reviews  int
	Sales    int
}

// Total returns the combined number of findings across all collections.
// Zero means the artifacts are consistent and ready for import.
func (s Summary) Total() int {
	return s.Products + s.Users + s.Reviews + s.Sales
}

// Run executes the whole validation pipeline over the artifacts in dir.
// All four collections are loaded up front; a missing or unparsable file is
// fatal and no partial summary is produced. Data-quality findings never
// abort the run; they accumulate into the returned Summary.
func Run(dir string, log *slog.Logger) (Summary, error) {
	var (
		products []ProductRecord
		users    []UserRecord
		reviews  []ReviewRecord
		sales    []SaleRecord
	)

	for _, c := range []struct {
		file string
		into any
	}{
		{model.ProductsFile, &products},
		{model.UsersFile, &users},
		{model.ReviewsFile, &reviews},
		{model.SalesFile, &sales},
	} {
		path := filepath.Join(dir, c.file)
		if err := loadCollection(path, c.into); err != nil {
			return Summary{}, err
		}
	}

	log.Info("collections loaded",
		"products", len(products),
		"users", len(users),
		"reviews", len(reviews),
		"sales", len(sales),
	)

	// Masters first: their key sets are the sole existence test for the
	// transactional collections.
	productIDs, productFindings := CheckProducts(products, log)
	userIDs, userFindings := CheckUsers(users, log)

	return Summary{
		Products: productFindings,
		Users:    userFindings,
		Reviews:  CheckReviews(reviews, productIDs, userIDs, log),
		Sales:    CheckSales(sales, productIDs, userIDs, log),
	}, nil
}

// loadCollection reads a JSON array into v. Both a missing file and invalid
// JSON are fatal for the validation run.
func loadCollection(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
