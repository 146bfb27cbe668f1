package ledger

import "sort"

// SortOption selects the single active sort key and direction.
type SortOption string

const (
	SortDateDesc   SortOption = "date-desc"
	SortDateAsc    SortOption = "date-asc"
	SortAmountDesc SortOption = "amount-desc"
	SortAmountAsc  SortOption = "amount-asc"
)

// SortOptions in the order the UI cycles through them.
var SortOptions = []SortOption{SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc}

// FilterAll disables category filtering.
const FilterAll = "all"

// PageSize is the fixed window of the paginated list.
const PageSize = 10

// View is the client-side projection over the ledger: one filter, one sort
// key, one page index. The zero value is not useful; use NewView.
type View struct {
	Sort     SortOption
	Category string
	Page     int
}

// NewView returns the default projection: newest first, unfiltered, page 1.
func NewView() View {
	return View{Sort: SortDateDesc, Category: FilterAll, Page: 1}
}

// Apply filters and sorts the list. The sort is stable, so entries with
// equal keys keep their insertion order.
func (v View) Apply(transactions []Transaction) []Transaction {
	filtered := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if v.Category == FilterAll || t.Category == v.Category {
			filtered = append(filtered, t)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch v.Sort {
		case SortDateAsc:
			return a.Date.Before(b.Date)
		case SortAmountDesc:
			return a.Amount > b.Amount
		case SortAmountAsc:
			return a.Amount < b.Amount
		default: // SortDateDesc
			return b.Date.Before(a.Date)
		}
	})
	return filtered
}

// PageCount is the number of pages needed for n items, at least 1.
func PageCount(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage forces page into [1, PageCount(n)].
func ClampPage(page, n int) int {
	if page < 1 {
		return 1
	}
	if last := PageCount(n); page > last {
		return last
	}
	return page
}

// Visible applies the projection and cuts out the current page.
func (v View) Visible(transactions []Transaction) []Transaction {
	applied := v.Apply(transactions)
	page := ClampPage(v.Page, len(applied))
	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(applied) {
		end = len(applied)
	}
	if start >= len(applied) {
		return []Transaction{}
	}
	return applied[start:end]
}

// FilterOptions lists "all" plus every category present, in order of first
// appearance, for the filter selector.
func FilterOptions(transactions []Transaction) []string {
	options := []string{FilterAll}
	seen := make(map[string]bool)
	for _, t := range transactions {
		if !seen[t.Category] {
			seen[t.Category] = true
			options = append(options, t.Category)
		}
	}
	return options
}
