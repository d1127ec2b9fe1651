package pgsql

import (
	portsrepo "github.com/corefin/ledger_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories together. The journal
// repository needs the account repository's in-transaction operations for
// balance updates during posting.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := NewPgxAccountRepository(dbPool)
	journalRepo := NewPgxJournalRepository(dbPool, accountRepo)

	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		JournalRepo: journalRepo,
	}
}
