package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType mirrors domain.EntryType at the storage boundary.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// Entry is the row shape of the entries table, indexed by journal_id and
// account_id. Rows are insert-only.
type Entry struct {
	EntryID      string          `db:"entry_id"`
	JournalID    string          `db:"journal_id"`
	AccountID    string          `db:"account_id"`
	EntryType    EntryType       `db:"entry_type"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	Description  string          `db:"description"`
	PostedAt     time.Time       `db:"posted_at"`
	AuditFields
}
