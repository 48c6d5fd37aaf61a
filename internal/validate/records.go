// Package validate re-checks the processed JSON collections independently
// of the transform pipeline: schema conformance for the master collections
// (products, users) and referential integrity for the transactional ones
// (reviews, sales).
//
// The record types here are deliberately loose: only the fields the checks
// inspect are declared, and prices are pointers so an absent field is
// distinguishable from zero. The validator must catch malformed artifacts,
// not assume the transform produced them.
package validate

// ProductRecord is the slice of a product document the schema check reads.
type ProductRecord struct {
	ProductID string `json:"product_id"`
	Pricing   struct {
		DiscountedPrice *float64 `json:"discounted_price"`
		ActualPrice     *float64 `json:"actual_price"`
	} `json:"pricing"`
	Rating struct {
		Average float64 `json:"average"`
	} `json:"rating"`
}

// UserRecord is the slice of a user document the schema check reads.
type UserRecord struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// ReviewRecord is the slice of a review document the integrity check reads.
// Rating is a float so the integer-ness of the stored value can be checked
// rather than assumed.
type ReviewRecord struct {
	ReviewID  string  `json:"review_id"`
	ProductID string  `json:"product_id"`
	UserID    string  `json:"user_id"`
	Rating    float64 `json:"rating"`
}

// SaleRecord is the slice of a sale document the integrity check reads.
type SaleRecord struct {
	SaleID        string `json:"sale_id"`
	ProductID     string `json:"product_id"`
	UserID        string `json:"user_id"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}

// KeySet holds the primary keys a master collection exposes to foreign-key
// checks. Duplicate ids still join the set; duplication is reported by the
// schema check but membership remains the sole existence test downstream.
type KeySet map[string]struct{}

// Contains reports whether id is a member of the set.
func (k KeySet) Contains(id string) bool {
	_, ok := k[id]
	return ok
}
