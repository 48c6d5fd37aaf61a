package model

// AnonymousUser is the sentinel user id assigned to reviews whose positional
// reviewer id is missing or too short to be valid.
const AnonymousUser = "ANONYMOUS"

// Review is one document of the reviews collection, keyed by ReviewID.
// Rating, helpful count and the verified flag are synthetic; the export does
// not carry per-review numeric data.
type Review struct {
	ReviewID         string   `json:"review_id"`
	ProductID        string   `json:"product_id"`
	UserID           string   `json:"user_id"`
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Rating           int      `json:"rating"`
	HelpfulCount     int      `json:"helpful_count"`
	VerifiedPurchase bool     `json:"verified_purchase"`
	ReviewDate       string   `json:"review_date"`
	Images           []string `json:"images"`
}
