package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/corefin/ledger_service/internal/apperrors"
	"github.com/corefin/ledger_service/internal/core/domain"
	portsrepo "github.com/corefin/ledger_service/internal/core/ports/repositories"
	"github.com/corefin/ledger_service/internal/models"
	"github.com/corefin/ledger_service/internal/utils/mapping"
	"github.com/corefin/ledger_service/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// NewPgxJournalRepository creates a new repository for journal and entry data.
func NewPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, reference_id, description, status, posted_at, reversal_of_journal_id, reversed_by_journal_id, created_at, last_updated_at`

const entryColumns = `entry_id, journal_id, account_id, entry_type, amount, currency_code, description, posted_at, created_at, last_updated_at`

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.ReferenceID,
		&m.Description,
		&m.Status,
		&m.PostedAt,
		&m.ReversalOfJournalID,
		&m.ReversedByJournalID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.JournalID,
		&m.AccountID,
		&m.EntryType,
		&m.Amount,
		&m.CurrencyCode,
		&m.Description,
		&m.PostedAt,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveJournal persists a journal with its entries and applies the account
// balance deltas, all inside one database transaction. The account rows are
// locked for the duration so concurrent postings against the same accounts
// serialize; no delta is ever lost or double-applied.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, entries []domain.Entry, balanceDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	// 1. Insert the journal row. The unique constraint on reference_id is
	// the authoritative idempotency guard under concurrency.
	modelJournal := mapping.ToModelJournal(journal)
	journalQuery := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, journalQuery,
		modelJournal.JournalID,
		modelJournal.ReferenceID,
		modelJournal.Description,
		modelJournal.Status,
		modelJournal.PostedAt,
		modelJournal.ReversalOfJournalID,
		modelJournal.ReversedByJournalID,
		modelJournal.CreatedAt,
		modelJournal.LastUpdatedAt,
	)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrConflict) {
			return fmt.Errorf("%w: journal reference id %s already exists", apperrors.ErrConflict, modelJournal.ReferenceID)
		}
		return fmt.Errorf("failed to insert journal %s: %w", modelJournal.JournalID, mapPgError(err))
	}

	// 2. Lock the affected account rows.
	accountIDs := make([]string, 0, len(balanceDeltas))
	for accID := range balanceDeltas {
		accountIDs = append(accountIDs, accID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return fmt.Errorf("failed to lock accounts for posting: %w", err)
	}

	// 3. Apply the balance deltas.
	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, balanceDeltas, journal.PostedAt); err != nil {
		return fmt.Errorf("failed to apply balance deltas: %w", err)
	}

	// 4. Insert the entries.
	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, e := range entries {
		modelEntry := mapping.ToModelEntry(e)
		batch.Queue(entryQuery,
			modelEntry.EntryID,
			modelEntry.JournalID,
			modelEntry.AccountID,
			modelEntry.EntryType,
			modelEntry.Amount,
			modelEntry.CurrencyCode,
			modelEntry.Description,
			modelEntry.PostedAt,
			modelEntry.CreatedAt,
			modelEntry.LastUpdatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute entry batch for journal %s: %w", modelJournal.JournalID, mapPgError(err))
	}

	// 5. Commit; until here nothing is visible to readers.
	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`

	modelJournal, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}

	domainJournal := mapping.ToDomainJournal(modelJournal)
	return &domainJournal, nil
}

// FindJournalByReferenceID retrieves a journal by its reference id.
func (r *PgxJournalRepository) FindJournalByReferenceID(ctx context.Context, referenceID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE reference_id = $1;`

	modelJournal, err := scanJournal(r.Pool.QueryRow(ctx, query, referenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by reference id %s: %w", referenceID, err)
	}

	domainJournal := mapping.ToDomainJournal(modelJournal)
	return &domainJournal, nil
}

// FindEntriesByJournalID retrieves all entries of a journal in persisted order.
func (r *PgxJournalRepository) FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE journal_id = $1
		ORDER BY posted_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row for journal %s: %w", journalID, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows for journal %s: %w", journalID, err)
	}

	return mapping.ToDomainEntrySlice(entries), nil
}

// ListEntriesByAccountID retrieves a paginated list of entries for one
// account in persisted order using token-based pagination. It returns the
// entries, a token for the next page, and an error.
func (r *PgxJournalRepository) ListEntriesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to learn whether there is a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE account_id = $1
	`
	// Persisted order; the (posted_at, entry_id) pair is a stable total order.
	orderByClause := `ORDER BY posted_at, entry_id`

	args := []interface{}{accountID}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastPostedAt, lastEntryID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %s", apperrors.ErrValidation, decodeErr)
		}
		// Tuple comparison is concise and efficient in Postgres.
		query += ` AND (posted_at, entry_id) > ($2, $3)`
		args = append(args, lastPostedAt, lastEntryID)
	}

	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query entries for account %s: %w", accountID, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan entry row for account %s: %w", accountID, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating entry rows for account %s: %w", accountID, err)
	}

	var nextTokenVal *string
	results := entries
	if len(entries) > limit {
		last := entries[limit-1] // the actual last item of the current page
		token := pagination.EncodeToken(last.PostedAt, last.EntryID)
		nextTokenVal = &token
		results = entries[:limit]
	}

	return mapping.ToDomainEntrySlice(results), nextTokenVal, nil
}

// ListJournals retrieves a paginated list of journals, newest first, using
// token-based pagination.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + journalColumns + ` FROM journals`

	filterClause := ``
	if !includeReversals {
		filterClause = `WHERE status != 'REVERSED' AND reversal_of_journal_id IS NULL`
	}

	orderByClause := `ORDER BY posted_at DESC, journal_id DESC`

	args := []interface{}{}
	query := baseQuery
	if filterClause != "" {
		query += " " + filterClause
	}

	if nextToken != nil && *nextToken != "" {
		lastPostedAt, lastJournalID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %s", apperrors.ErrValidation, decodeErr)
		}
		connector := "WHERE"
		if filterClause != "" {
			connector = "AND"
		}
		query += fmt.Sprintf(" %s (posted_at, journal_id) < ($1, $2)", connector)
		args = append(args, lastPostedAt, lastJournalID)
	}

	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	modelJournals := make([]models.Journal, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanJournal(rows)
		if scanErr != nil {
			return nil, nil, fmt.Errorf("failed to scan journal row: %w", scanErr)
		}
		modelJournals = append(modelJournals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal rows: %w", err)
	}

	var nextTokenVal *string
	results := modelJournals
	if len(modelJournals) > limit {
		last := modelJournals[limit-1]
		token := pagination.EncodeToken(last.PostedAt, last.JournalID)
		nextTokenVal = &token
		results = modelJournals[:limit]
	}

	domainJournals := make([]domain.Journal, len(results))
	for i, m := range results {
		domainJournals[i] = mapping.ToDomainJournal(m)
	}

	return domainJournals, nextTokenVal, nil
}

// MarkJournalReversed flips a journal to REVERSED and records the reversing
// journal's id. The status guard in the WHERE clause makes the flip
// idempotent-safe: a journal already REVERSED is reported as such.
func (r *PgxJournalRepository) MarkJournalReversed(ctx context.Context, journalID string, reversedByJournalID string, now time.Time) error {
	query := `
		UPDATE journals
		SET status = $2,
		    reversed_by_journal_id = $3,
		    last_updated_at = $4
		WHERE journal_id = $1 AND status = $5;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		journalID,
		models.Reversed,
		reversedByJournalID,
		now,
		models.Posted,
	)
	if err != nil {
		return fmt.Errorf("failed to mark journal %s reversed: %w", journalID, mapPgError(err))
	}

	if cmdTag.RowsAffected() == 0 {
		if _, findErr := r.FindJournalByID(ctx, journalID); errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: journal %s is not in POSTED status", apperrors.ErrValidation, journalID)
	}
	return nil
}
