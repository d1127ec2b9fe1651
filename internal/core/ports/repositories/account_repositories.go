package repositories

import (
	"context"
	"time"

	"github.com/corefin/ledger_service/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByExternalID retrieves an account by its external-system account id.
	FindAccountByExternalID(ctx context.Context, externalAccountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	// IDs with no matching account are simply absent from the returned map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts in a stable order.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountStatus overwrites the status of an account. It never
	// touches the balance.
	UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus, now time.Time) error
}

// AccountTransactionSupport defines operations used inside a posting transaction
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks their rows for
	// the duration of the surrounding transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// ApplyBalanceDeltasInTx adds the given signed deltas to the account
	// balances within the given transaction.
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, balanceDeltas map[string]decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
