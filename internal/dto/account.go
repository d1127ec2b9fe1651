package dto

import (
	"time"

	"github.com/corefin/ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload for creating a ledger account.
type CreateAccountRequest struct {
	Name              string `json:"name" binding:"required"`
	AccountType       string `json:"accountType" binding:"required,accounttype"`
	CurrencyCode      string `json:"currencyCode" binding:"required,iso4217"`
	ExternalAccountID string `json:"externalAccountID,omitempty"`
}

// UpdateAccountStatusRequest is the payload for overwriting an account's status.
type UpdateAccountStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE SUSPENDED CLOSED"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID         string          `json:"accountID"`
	Name              string          `json:"name"`
	AccountType       string          `json:"accountType"`
	Status            string          `json:"status"`
	CurrencyCode      string          `json:"currencyCode"`
	ExternalAccountID string          `json:"externalAccountID,omitempty"`
	Balance           decimal.Decimal `json:"balance"`
	CreatedAt         time.Time       `json:"createdAt"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
}

// ListAccountsResponse is a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:         a.AccountID,
		Name:              a.Name,
		AccountType:       string(a.AccountType),
		Status:            string(a.Status),
		CurrencyCode:      a.CurrencyCode,
		ExternalAccountID: a.ExternalAccountID,
		Balance:           a.Balance,
		CreatedAt:         a.CreatedAt,
		LastUpdatedAt:     a.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain.Account.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
