package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType at the storage boundary.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountStatus mirrors domain.AccountStatus at the storage boundary.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountClosed    AccountStatus = "CLOSED"
)

// Account is the row shape of the accounts table.
// ExternalAccountID is nullable and carries a partial unique index.
type Account struct {
	AccountID         string          `db:"account_id"`
	Name              string          `db:"name"`
	AccountType       AccountType     `db:"account_type"`
	Status            AccountStatus   `db:"status"`
	CurrencyCode      string          `db:"currency_code"`
	ExternalAccountID string          `db:"external_account_id"` // nullable
	Balance           decimal.Decimal `db:"balance"`
	AuditFields
}
