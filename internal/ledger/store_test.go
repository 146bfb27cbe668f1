package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, store.Transactions())

	first := tx("a", TypeExpense, 42.50, "Food & Dining", day(1))
	second := tx("b", TypeIncome, 2500, "Income", day(2))
	require.NoError(t, store.Add(first))
	require.NoError(t, store.Add(second))

	// New entries are prepended.
	got := store.Transactions()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)

	// Reloading reproduces the identical list, order and fields included.
	reloaded, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, got, reloaded.Transactions())
}

func TestStoreRemove(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Add(tx("a", TypeExpense, 10, "Shopping", day(1))))
	require.NoError(t, store.Add(tx("b", TypeExpense, 20, "Shopping", day(2))))

	require.NoError(t, store.Remove("a"))
	got := store.Transactions()
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	// Removing an unknown id is a silent no-op.
	require.NoError(t, store.Remove("missing"))
	assert.Len(t, store.Transactions(), 1)
}

func TestStoreRewritesWholeFile(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Add(tx("a", TypeExpense, 10, "Shopping", day(1))))
	require.NoError(t, store.Remove("a"))

	data, err := os.ReadFile(filepath.Join(dir, StorageKey+".json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestStoreMutationsAreVisibleImmediately(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	entry := tx("a", TypeExpense, 10, "Shopping", time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))
	require.NoError(t, store.Add(entry))

	got := store.Transactions()
	require.Len(t, got, 1)
	assert.True(t, got[0].Date.Equal(entry.Date))
	assert.Equal(t, entry.Amount, got[0].Amount)
}
