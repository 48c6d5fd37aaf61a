package transform

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/globalmarket/analytics-etl/internal/clean"
	"github.com/globalmarket/analytics-etl/internal/csvio"
	"github.com/globalmarket/analytics-etl/internal/model"
)

// Draw lists for the synthetic sale fields. Deliberately subsets of the
// schema vocabularies: the generator never produces net_banking, processing
// or cancelled, but the validator accepts them.
var (
	salePaymentMethods = []string{"credit_card", "debit_card", "upi", "cash_on_delivery"}
	saleStatuses       = []string{"completed", "pending", "shipped", "delivered"}
	saleCities         = []string{"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata", "Pune"}
)

// saleIDFormat fixes the year segment to the literal 2024; the sale date is
// randomized independently and the two do not agree.
const saleIDFormat = "SALE-2024-%06d"

// pricedRow is a sampling candidate: an export row whose cleaned discounted
// price is positive.
type pricedRow struct {
	row   csvio.Row
	price float64
}

// GenerateSales fabricates up to count synthetic sales. Each sale draws one
// row uniformly (with replacement) from the rows with a positive cleaned
// discounted price, so repeated products across sales are expected.
// Generation stops early when no row qualifies.
//
// Sale ids carry a 1-based sequence number tied to the iteration index, not
// to the number of emitted records: a skipped iteration leaves a gap in the
// emitted id sequence.
func GenerateSales(rows []csvio.Row, count int, rng *rand.Rand, now time.Time) []model.Sale {
	pool := make([]pricedRow, 0, len(rows))
	for _, row := range rows {
		if price := clean.Currency(row.Get("discounted_price")); price > 0 {
			pool = append(pool, pricedRow{row: row, price: price})
		}
	}

	sales := make([]model.Sale, 0, count)
	for i := 0; i < count; i++ {
		if len(pool) == 0 {
			break
		}

		pick := pool[rng.Intn(len(pool))]
		quantity := rng.Intn(5) + 1

		sales = append(sales, model.Sale{
			SaleID:        fmt.Sprintf(saleIDFormat, i+1),
			ProductID:     pick.row.Get("product_id"),
			UserID:        saleUser(pick.row),
			Quantity:      quantity,
			TotalAmount:   clean.Round2(pick.price * float64(quantity)),
			SaleDate:      now.AddDate(0, 0, -rng.Intn(366)).Format(time.RFC3339),
			PaymentMethod: salePaymentMethods[rng.Intn(len(salePaymentMethods))],
			Status:        saleStatuses[rng.Intn(len(saleStatuses))],
			Shipping: model.Shipping{
				City:       saleCities[rng.Intn(len(saleCities))],
				Country:    "India",
				PostalCode: strconv.Itoa(rng.Intn(900000) + 100000),
			},
		})
	}

	return sales
}

// saleUser returns the first reviewer id of the row when it is long enough
// to be valid, otherwise the GUEST_USER sentinel.
func saleUser(row csvio.Row) string {
	ids := strings.Split(row.Get("user_id"), ",")
	id := strings.TrimSpace(ids[0])
	if utf8.RuneCountInString(id) > 2 {
		return id
	}
	return model.GuestUser
}
