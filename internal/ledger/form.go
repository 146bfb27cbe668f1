package ledger

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount the form accepts.
const MaxAmount = 999_999_999

// Validation failures, worded exactly as the form shows them.
var (
	ErrDescriptionTooShort = errors.New("Description must be at least 3 characters long")
	ErrDescriptionTooLong  = errors.New("Description must be less than 50 characters")
	ErrAmountNotPositive   = errors.New("Amount must be greater than 0")
	ErrAmountTooLarge      = errors.New("Amount is too large")
)

// FormData is the raw input of the add-transaction form.
type FormData struct {
	Description string
	Amount      string
	Type        Type
	Category    string
	Date        string // 2006-01-02, empty means today
}

// Validate checks the form and returns the first failing rule, mirroring the
// submit-time checks of the form. Amounts are parsed as decimals so that
// two-digit money values do not pick up float artifacts.
func (f FormData) Validate() error {
	desc := strings.TrimSpace(f.Description)
	// Character counts, not bytes; the form limits what the user typed.
	if utf8.RuneCountInString(desc) < 3 {
		return ErrDescriptionTooShort
	}
	if utf8.RuneCountInString(desc) > 50 {
		return ErrDescriptionTooLong
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil || !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if amount.GreaterThan(decimal.NewFromInt(MaxAmount)) {
		return ErrAmountTooLarge
	}
	return nil
}

// NewTransaction validates the form and builds a ledger entry from it. The
// date falls back to the current day when left empty.
func (f FormData) NewTransaction() (Transaction, error) {
	if err := f.Validate(); err != nil {
		return Transaction{}, err
	}

	amount, _ := decimal.NewFromString(strings.TrimSpace(f.Amount))

	date := time.Now()
	if f.Date != "" {
		parsed, err := time.Parse("2006-01-02", f.Date)
		if err != nil {
			return Transaction{}, errors.New("Invalid date")
		}
		date = parsed
	}

	return Transaction{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(f.Description),
		Amount:      amount.Round(2).InexactFloat64(),
		Type:        f.Type,
		Date:        date,
		Category:    f.Category,
		CreatedAt:   time.Now(),
	}, nil
}
