// Package ledger implements the local transaction ledger kept by the UI.
// It is deliberately independent of the REST API: the two stores were never
// connected in the original application, and wiring them together would
// invent synchronization semantics nobody specified.
package ledger

import "time"

// Type marks a transaction as money coming in or going out.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Categories is the closed set of labels the ledger knows. These are plain
// strings local to the UI, not references into the backend category store.
var Categories = []string{
	"Food & Dining",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Utilities",
	"Housing",
	"Healthcare",
	"Income",
	"Other",
}

// CategoriesFor returns the labels selectable for a transaction type:
// income entries always use "Income", expenses use everything else.
func CategoriesFor(t Type) []string {
	if t == TypeIncome {
		return []string{"Income"}
	}
	out := make([]string, 0, len(Categories)-1)
	for _, c := range Categories {
		if c != "Income" {
			out = append(out, c)
		}
	}
	return out
}

// Transaction is one ledger entry. IDs are generated locally; CreatedAt
// preserves insertion order for stable sorting.
type Transaction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        Type      `json:"type"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
