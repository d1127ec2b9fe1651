package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/corefin/ledger_service/internal/apperrors"
	"github.com/corefin/ledger_service/internal/core/domain"
	portsrepo "github.com/corefin/ledger_service/internal/core/ports/repositories"
	portssvc "github.com/corefin/ledger_service/internal/core/ports/services"
	"github.com/corefin/ledger_service/internal/dto"
	"github.com/corefin/ledger_service/internal/middleware"
	"github.com/corefin/ledger_service/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrBlankReference    = errors.New("journal reference id must not be blank")
	ErrNoEntries         = errors.New("journal must have at least one entry")
	ErrUnknownAccount    = errors.New("unknown account")
	ErrAccountClosed     = errors.New("account closed")
	ErrCurrencyMismatch  = errors.New("entry currency does not match account currency")
	ErrJournalUnbalanced = errors.New("debits and credits must balance")
	ErrZeroTotal         = errors.New("journal total must be greater than zero")
	ErrAlreadyReversed   = errors.New("journal is already reversed")
	ErrNothingToReverse  = errors.New("no entries to reverse")
)

// journalService is the posting engine: it validates and atomically posts
// balanced journals, and builds and posts reversals through the same path.
type journalService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostJournal validates a journal and commits it atomically together with the
// balance updates it causes. Every failure is detected before any mutation is
// applied; either the journal is fully posted or nothing changed.
func (s *journalService) PostJournal(ctx context.Context, req dto.PostJournalRequest) (*domain.Journal, error) {
	return s.post(ctx, req.ReferenceID, req.Description, nil, req.Entries)
}

// post is the single posting pipeline. Reversals go through it too, so a
// reversal is not privileged: it must independently balance and pass every
// rule.
func (s *journalService) post(ctx context.Context, referenceID, description string, reversalOf *string, entryReqs []dto.EntryRequest) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// --- Header validation ---
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrBlankReference)
	}
	if len(entryReqs) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNoEntries)
	}

	existing, err := s.journalRepo.FindJournalByReferenceID(ctx, referenceID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check journal reference id", slog.String("error", err.Error()), slog.String("reference_id", referenceID))
		return nil, fmt.Errorf("failed to check reference id: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: journal reference id %s already exists", apperrors.ErrConflict, referenceID)
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()

	// Prepare domain entries from the request. The canonical rounding to
	// MoneyScale happens here, once; balance accumulation never re-rounds.
	entries := make([]domain.Entry, len(entryReqs))
	accountIDs := make([]string, 0, len(entryReqs))
	for i, er := range entryReqs {
		entries[i] = domain.Entry{
			EntryID:      uuid.NewString(),
			JournalID:    journalID,
			AccountID:    er.AccountID,
			EntryType:    domain.EntryType(er.EntryType),
			Amount:       er.Amount.Round(domain.MoneyScale),
			CurrencyCode: er.CurrencyCode,
			Description:  er.Description,
			PostedAt:     now,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		accountIDs = append(accountIDs, er.AccountID)
	}

	// --- Account resolution ---
	uniqueAccountIDs := uniqueStrings(accountIDs)
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueAccountIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for journal posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range uniqueAccountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrUnknownAccount, id)
		}
		if acc.Status == domain.AccountClosed {
			return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrAccountClosed, id)
		}
	}

	// --- Entry validation ---
	for i := range entries {
		e := &entries[i]
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		acc := accountsMap[e.AccountID]
		if e.CurrencyCode != acc.CurrencyCode {
			return nil, fmt.Errorf("%w: %s: entry currency %s, account %s holds %s",
				apperrors.ErrValidation, ErrCurrencyMismatch, e.CurrencyCode, e.AccountID, acc.CurrencyCode)
		}
	}
	totalDebits, totalCredits := accounting.SumEntryTotals(entries)
	if !totalDebits.Equal(totalCredits) {
		return nil, fmt.Errorf("%w: %s: debits sum is %s and credits sum is %s",
			apperrors.ErrValidation, ErrJournalUnbalanced, totalDebits.String(), totalCredits.String())
	}
	if totalDebits.IsZero() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrZeroTotal)
	}

	// --- Balance deltas via the accounting sign table ---
	balanceDeltas := make(map[string]decimal.Decimal)
	for i := range entries {
		e := &entries[i]
		signedAmount, err := accounting.CalculateSignedAmount(*e, accountsMap[e.AccountID].AccountType)
		if err != nil {
			logger.Error("Failed to calculate signed amount", slog.String("error", err.Error()), slog.String("entry_id", e.EntryID))
			return nil, fmt.Errorf("internal error calculating balance deltas: %w", err)
		}
		balanceDeltas[e.AccountID] = balanceDeltas[e.AccountID].Add(signedAmount)
	}

	// --- Commit ---
	journal := domain.Journal{
		JournalID:           journalID,
		ReferenceID:         referenceID,
		Description:         description,
		Status:              domain.Posted,
		PostedAt:            now,
		ReversalOfJournalID: reversalOf,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, entries, balanceDeltas); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrRetryable) {
			logger.Error("Failed to save journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, err
	}

	logger.Info("Journal posted successfully",
		slog.String("journal_id", journalID),
		slog.String("reference_id", referenceID),
		slog.String("total", totalDebits.String()))

	journal.Entries = entries
	return &journal, nil
}

// ReverseJournal posts a new journal mirroring a prior one (debits and
// credits swapped) and flips the original to REVERSED. The mirrored journal
// goes through the full posting pipeline; if posting it fails, the original
// is left untouched.
func (s *journalService) ReverseJournal(ctx context.Context, journalID string, reason string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to fetch journal for reversal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, err
	}
	if original.Status == domain.Reversed {
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrAlreadyReversed, journalID)
	}

	originalEntries, err := s.journalRepo.FindEntriesByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch entries for reversal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve original entries: %w", err)
	}
	if len(originalEntries) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNothingToReverse)
	}

	referenceID := original.ReferenceID + "-REV"
	description := reason
	if description == "" {
		description = fmt.Sprintf("Reversal of journal %s", original.ReferenceID)
	}

	// Mirror every entry: same account, amount and currency, flipped type.
	mirrored := make([]dto.EntryRequest, len(originalEntries))
	for i, orig := range originalEntries {
		mirrored[i] = dto.EntryRequest{
			AccountID:    orig.AccountID,
			EntryType:    string(orig.EntryType.Opposite()),
			Amount:       orig.Amount,
			CurrencyCode: orig.CurrencyCode,
			Description:  fmt.Sprintf("Reversal of entry %s", orig.EntryID),
		}
	}

	reversal, err := s.post(ctx, referenceID, description, &original.JournalID, mirrored)
	if err != nil {
		return nil, err
	}

	// Flip the original. If this write fails the system is left in the
	// documented intermediate state (reversal posted, original not yet
	// marked); the flip is retry-safe and detectable via ReversalOfJournalID.
	now := time.Now().UTC()
	if err := s.journalRepo.MarkJournalReversed(ctx, original.JournalID, reversal.JournalID, now); err != nil {
		logger.Error("Failed to mark original journal as reversed",
			slog.String("error", err.Error()),
			slog.String("original_journal_id", original.JournalID),
			slog.String("reversal_journal_id", reversal.JournalID))
		return nil, fmt.Errorf("reversal %s posted but original %s not marked reversed: %w", reversal.JournalID, original.JournalID, err)
	}

	logger.Info("Journal reversed successfully",
		slog.String("original_journal_id", original.JournalID),
		slog.String("reversal_journal_id", reversal.JournalID))
	return reversal, nil
}

// GetJournalByID retrieves a journal together with its entries.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal by ID", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, err
	}

	entries, err := s.journalRepo.FindEntriesByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch entries for journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve entries for journal %s: %w", journalID, err)
	}
	journal.Entries = entries
	return journal, nil
}

// ListJournals retrieves a paginated list of journals.
func (s *journalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journals, nextToken, err := s.journalRepo.ListJournals(ctx, params.Limit, params.NextToken, params.IncludeReversals)
	if err != nil {
		logger.Error("Failed to list journals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve journals: %w", err)
	}

	journalResponses := make([]dto.JournalResponse, len(journals))
	for i := range journals {
		journalResponses[i] = dto.ToJournalResponse(&journals[i])
	}
	return &dto.ListJournalsResponse{
		Journals:  journalResponses,
		NextToken: nextToken,
	}, nil
}

// ListEntriesByAccount retrieves the entries posted against one account, in
// persisted order. Fails with NotFound if the account id is unknown.
func (s *journalService) ListEntriesByAccount(ctx context.Context, accountID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve account for entry listing", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntriesByAccountID(ctx, accountID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list entries by account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
