package model

// GuestUser is the sentinel user id assigned to sales when the source row
// has no valid reviewer id. It is exempt from user existence checks.
const GuestUser = "GUEST_USER"

// Shipping holds the synthetic shipping destination of a sale.
type Shipping struct {
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// Sale is one document of the sales collection, keyed by SaleID. Sales are
// entirely synthetic: independent fabricated transactions over products with
// a positive cleaned price.
type Sale struct {
	SaleID        string   `json:"sale_id"`
	ProductID     string   `json:"product_id"`
	UserID        string   `json:"user_id"`
	Quantity      int      `json:"quantity"`
	TotalAmount   float64  `json:"total_amount"`
	SaleDate      string   `json:"sale_date"`
	PaymentMethod string   `json:"payment_method"`
	Status        string   `json:"status"`
	Shipping      Shipping `json:"shipping"`
}
