package schema

import "regexp"

// Enum is a closed set of allowed string values.
type Enum []string

// Contains reports whether v is a member of the enumeration.
func (e Enum) Contains(v string) bool {
	for _, allowed := range e {
		if v == allowed {
			return true
		}
	}
	return false
}

// Closed vocabularies for the sales collection.
var (
	PaymentMethods = Enum{"credit_card", "debit_card", "upi", "cash_on_delivery", "net_banking"}
	SaleStatuses   = Enum{"pending", "processing", "shipped", "delivered", "completed", "cancelled"}
	Currencies     = Enum{"INR", "USD", "EUR", "GBP"}
)

// Patterns re-checked by the validation pipeline.
var (
	// EmailPattern matches local@domain.tld with an ASCII local part and a
	// TLD of at least two letters.
	EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// SaleIDPattern matches generated sale identifiers. The year segment is
	// four digits and the sequence number is zero-padded to six.
	SaleIDPattern = regexp.MustCompile(`^SALE-\d{4}-\d{6}$`)
)
