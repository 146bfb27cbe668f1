package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StorageKey names the persisted list. It doubles as the file name so that a
// ledger directory can hold exactly one list, like a localStorage key.
const StorageKey = "financeflow_transactions"

// Store keeps the transaction list in memory and rewrites the whole JSON
// file on every mutation. There is no cross-process coordination; the last
// writer wins.
type Store struct {
	path         string
	transactions []Transaction
}

// Open loads the ledger from dir, starting empty when no file exists yet.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}
	s := &Store{path: filepath.Join(dir, StorageKey+".json")}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	if err := json.Unmarshal(data, &s.transactions); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}
	return s, nil
}

// Transactions returns the current list, newest insertion first.
func (s *Store) Transactions() []Transaction {
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Add prepends a transaction and persists the list.
func (s *Store) Add(t Transaction) error {
	s.transactions = append([]Transaction{t}, s.transactions...)
	return s.save()
}

// Remove deletes the transaction with the given id and persists the list.
// Removing an unknown id is a no-op, as in the original list filter.
func (s *Store) Remove(id string) error {
	kept := s.transactions[:0]
	for _, t := range s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.transactions = kept
	return s.save()
}

func (s *Store) save() error {
	data, err := json.Marshal(s.transactions)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}
