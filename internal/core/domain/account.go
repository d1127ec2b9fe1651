package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five accounting types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// DebitIncreases reports whether a DEBIT entry increases the balance of an
// account of this type. Assets and expenses grow on the debit side;
// liabilities, equity and revenue grow on the credit side.
func (t AccountType) DebitIncreases() bool {
	return t == Asset || t == Expense
}

// AccountStatus is the lifecycle state of a ledger account.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountClosed    AccountStatus = "CLOSED"
)

// IsValid reports whether s is a known account status.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountActive, AccountSuspended, AccountClosed:
		return true
	}
	return false
}

// Account represents a ledger account within the core domain.
// Balance is derived exclusively from posted entries; it is never set
// directly by a caller.
type Account struct {
	AccountID         string          `json:"accountID"`
	Name              string          `json:"name"`
	AccountType       AccountType     `json:"accountType"`
	Status            AccountStatus   `json:"status"`
	CurrencyCode      string          `json:"currencyCode"`
	ExternalAccountID string          `json:"externalAccountID,omitempty"` // unique if present
	Balance           decimal.Decimal `json:"balance"`
	AuditFields
}
