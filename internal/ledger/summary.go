package ledger

import "math"

// Summary aggregates the full transaction list, ignoring any active filter.
type Summary struct {
	TotalIncome   float64
	TotalExpenses float64
	Balance       float64
}

// Summarize computes income and expense totals and their balance.
func Summarize(transactions []Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		switch t.Type {
		case TypeIncome:
			s.TotalIncome += t.Amount
		case TypeExpense:
			s.TotalExpenses += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	return s
}

// Label names the balance state: a non-negative balance is a surplus.
func (s Summary) Label() string {
	if s.Balance >= 0 {
		return "Surplus"
	}
	return "Deficit"
}

// AbsBalance is the balance magnitude shown next to the label.
func (s Summary) AbsBalance() float64 {
	return math.Abs(s.Balance)
}
