package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether an entry line is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// Opposite returns the mirrored entry type, used when building reversals.
func (t EntryType) Opposite() EntryType {
	if t == Debit {
		return Credit
	}
	return Debit
}

// Entry represents a single leg within a journal, affecting one account.
// Entries are immutable once created.
type Entry struct {
	EntryID      string          `json:"entryID"`
	JournalID    string          `json:"journalID"`
	AccountID    string          `json:"accountID"`
	EntryType    EntryType       `json:"entryType"`
	Amount       decimal.Decimal `json:"amount"` // always strictly positive
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description"`
	PostedAt     time.Time       `json:"postedAt"`
	AuditFields
}

// Validate checks the entry's intrinsic rules: a known entry type, a
// strictly positive amount and a currency code. Cross-account rules
// (currency match, account status) are checked by the posting engine.
func (e *Entry) Validate() error {
	if e.EntryType != Debit && e.EntryType != Credit {
		return fmt.Errorf("entry type must be DEBIT or CREDIT, got %q", e.EntryType)
	}
	if e.AccountID == "" {
		return fmt.Errorf("entry must reference an account")
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("entry amount must be positive, got %s", e.Amount.String())
	}
	if e.CurrencyCode == "" {
		return fmt.Errorf("entry currency code is required")
	}
	return nil
}
