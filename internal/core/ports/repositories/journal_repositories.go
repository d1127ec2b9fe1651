package repositories

import (
	"context"
	"time"

	"github.com/corefin/ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a specific journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindJournalByReferenceID retrieves a journal by its caller-supplied
	// reference id.
	FindJournalByReferenceID(ctx context.Context, referenceID string) (*domain.Journal, error)

	// ListJournals retrieves a paginated list of journals using token-based
	// pagination. It returns the journals, a token for the next page, and an
	// error.
	ListJournals(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournal persists a journal with its entries and applies the account
	// balance deltas, all inside a single database transaction. Either every
	// write becomes visible or none does.
	SaveJournal(ctx context.Context, journal domain.Journal, entries []domain.Entry, balanceDeltas map[string]decimal.Decimal) error

	// MarkJournalReversed flips a journal to REVERSED and records the
	// reversing journal's id. Returns apperrors.ErrNotFound if the journal
	// does not exist.
	MarkJournalReversed(ctx context.Context, journalID string, reversedByJournalID string, now time.Time) error
}

// EntryReader defines read operations for entry data
type EntryReader interface {
	// FindEntriesByJournalID retrieves all entries of a journal in persisted
	// order.
	FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.Entry, error)

	// ListEntriesByAccountID retrieves a paginated list of entries for one
	// account in persisted order using token-based pagination.
	ListEntriesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Entry, *string, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	EntryReader
}
