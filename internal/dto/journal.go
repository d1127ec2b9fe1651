package dto

import (
	"time"

	"github.com/corefin/ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryRequest is one leg of a journal in a posting request.
type EntryRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	EntryType    string          `json:"entryType" binding:"required,oneof=DEBIT CREDIT"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,iso4217"`
	Description  string          `json:"description,omitempty"`
}

// PostJournalRequest is the payload for posting a journal.
type PostJournalRequest struct {
	ReferenceID string         `json:"referenceID" binding:"required"`
	Description string         `json:"description,omitempty"`
	Entries     []EntryRequest `json:"entries" binding:"required,dive"`
}

// ReverseJournalRequest is the payload for reversing a posted journal.
type ReverseJournalRequest struct {
	Reason string `json:"reason,omitempty"`
}

// EntryResponse defines the data returned for an entry.
type EntryResponse struct {
	EntryID      string          `json:"entryID"`
	JournalID    string          `json:"journalID"`
	AccountID    string          `json:"accountID"`
	EntryType    string          `json:"entryType"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description,omitempty"`
	PostedAt     time.Time       `json:"postedAt"`
}

// JournalResponse defines the data returned for a journal, entries included.
type JournalResponse struct {
	JournalID           string          `json:"journalID"`
	ReferenceID         string          `json:"referenceID"`
	Description         string          `json:"description"`
	Status              string          `json:"status"`
	PostedAt            time.Time       `json:"postedAt"`
	ReversalOfJournalID *string         `json:"reversalOfJournalID,omitempty"`
	ReversedByJournalID *string         `json:"reversedByJournalID,omitempty"`
	Entries             []EntryResponse `json:"entries,omitempty"`
}

// ListJournalsParams holds parameters for listing journals.
type ListJournalsParams struct {
	Limit            int
	NextToken        *string
	IncludeReversals bool
}

// ListJournalsResponse is a page of journals plus the cursor for the next one.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ListEntriesParams holds parameters for listing entries of an account.
type ListEntriesParams struct {
	Limit     int
	NextToken *string
}

// ListEntriesResponse is a page of entries plus the cursor for the next one.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:      e.EntryID,
		JournalID:    e.JournalID,
		AccountID:    e.AccountID,
		EntryType:    string(e.EntryType),
		Amount:       e.Amount,
		CurrencyCode: e.CurrencyCode,
		Description:  e.Description,
		PostedAt:     e.PostedAt,
	}
}

// ToEntryResponses converts a slice of domain.Entry.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}

// ToJournalResponse converts a domain.Journal, including any loaded entries.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:           j.JournalID,
		ReferenceID:         j.ReferenceID,
		Description:         j.Description,
		Status:              string(j.Status),
		PostedAt:            j.PostedAt,
		ReversalOfJournalID: j.ReversalOfJournalID,
		ReversedByJournalID: j.ReversedByJournalID,
	}
	if len(j.Entries) > 0 {
		resp.Entries = ToEntryResponses(j.Entries)
	}
	return resp
}
