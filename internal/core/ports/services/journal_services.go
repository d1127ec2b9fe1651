package services

import (
	"context"

	"github.com/corefin/ledger_service/internal/core/domain"
	"github.com/corefin/ledger_service/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a journal and its entries.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a paginated list of journals.
	ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// PostJournal validates and atomically posts a balanced journal.
	PostJournal(ctx context.Context, req dto.PostJournalRequest) (*domain.Journal, error)

	// ReverseJournal posts a mirrored journal undoing a prior one and flips
	// the original to REVERSED.
	ReverseJournal(ctx context.Context, journalID string, reason string) (*domain.Journal, error)
}

// EntryReaderSvc defines read operations for entry data
type EntryReaderSvc interface {
	// ListEntriesByAccount retrieves entries posted against one account.
	ListEntriesByAccount(ctx context.Context, accountID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	EntryReaderSvc
}
