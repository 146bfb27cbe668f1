package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 3, n, 0, 0, 0, 0, time.UTC)
}

func TestViewSort(t *testing.T) {
	transactions := []Transaction{
		tx("a", TypeExpense, 30, "Shopping", day(2)),
		tx("b", TypeExpense, 10, "Shopping", day(3)),
		tx("c", TypeExpense, 20, "Shopping", day(1)),
	}

	tests := []struct {
		sort SortOption
		want []string
	}{
		{SortDateDesc, []string{"b", "a", "c"}},
		{SortDateAsc, []string{"c", "a", "b"}},
		{SortAmountDesc, []string{"a", "c", "b"}},
		{SortAmountAsc, []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			v := View{Sort: tt.sort, Category: FilterAll, Page: 1}
			got := v.Apply(transactions)
			require.Len(t, got, len(tt.want))
			for i, id := range tt.want {
				assert.Equal(t, id, got[i].ID)
			}
		})
	}
}

func TestViewSort_StableOnEqualKeys(t *testing.T) {
	// Equal amounts keep their insertion order, and re-sorting an already
	// sorted list changes nothing.
	transactions := []Transaction{
		tx("a", TypeExpense, 10, "Shopping", day(1)),
		tx("b", TypeExpense, 10, "Shopping", day(2)),
		tx("c", TypeExpense, 10, "Shopping", day(3)),
	}

	v := View{Sort: SortAmountDesc, Category: FilterAll, Page: 1}
	first := v.Apply(transactions)
	second := v.Apply(first)

	assert.Equal(t, []string{"a", "b", "c"}, []string{first[0].ID, first[1].ID, first[2].ID})
	assert.Equal(t, first, second)
}

func TestViewFilter(t *testing.T) {
	transactions := []Transaction{
		tx("a", TypeExpense, 30, "Shopping", day(1)),
		tx("b", TypeExpense, 10, "Housing", day(2)),
		tx("c", TypeIncome, 20, "Income", day(3)),
	}

	v := NewView()
	v.Category = "Housing"
	got := v.Apply(transactions)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	v.Category = FilterAll
	assert.Len(t, v.Apply(transactions), 3)
}

func TestFilterOptions(t *testing.T) {
	transactions := []Transaction{
		tx("a", TypeExpense, 30, "Shopping", day(1)),
		tx("b", TypeExpense, 10, "Housing", day(2)),
		tx("c", TypeExpense, 15, "Shopping", day(3)),
	}

	assert.Equal(t, []string{"all", "Shopping", "Housing"}, FilterOptions(transactions))
	assert.Equal(t, []string{"all"}, FilterOptions(nil))
}

func TestPagination(t *testing.T) {
	var transactions []Transaction
	for i := 1; i <= 25; i++ {
		transactions = append(transactions, tx(fmt.Sprintf("%02d", i), TypeExpense, float64(i), "Shopping", day(1)))
	}

	v := View{Sort: SortAmountAsc, Category: FilterAll, Page: 1}

	page1 := v.Visible(transactions)
	require.Len(t, page1, 10)
	assert.Equal(t, "01", page1[0].ID)
	assert.Equal(t, "10", page1[9].ID)

	v.Page = 3
	page3 := v.Visible(transactions)
	require.Len(t, page3, 5)
	assert.Equal(t, "21", page3[0].ID)
	assert.Equal(t, "25", page3[4].ID)

	assert.Equal(t, 3, PageCount(25))
	assert.Equal(t, 1, PageCount(0))

	// Out-of-range pages are clamped into [1, 3].
	assert.Equal(t, 1, ClampPage(0, 25))
	assert.Equal(t, 3, ClampPage(4, 25))
	assert.Equal(t, 2, ClampPage(2, 25))

	v.Page = 4
	assert.Len(t, v.Visible(transactions), 5)
}
