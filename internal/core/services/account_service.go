package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/corefin/ledger_service/internal/apperrors"
	"github.com/corefin/ledger_service/internal/core/domain"
	portsrepo "github.com/corefin/ledger_service/internal/core/ports/repositories"
	portssvc "github.com/corefin/ledger_service/internal/core/ports/services"
	"github.com/corefin/ledger_service/internal/dto"
	"github.com/corefin/ledger_service/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService provides ledger account lifecycle operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new ledger account. The account starts ACTIVE with
// a zero balance; the balance is only ever changed by the posting engine.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountType := domain.AccountType(req.AccountType)
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	// externalAccountID uniqueness is enforced at creation. The unique index
	// on the column backs this check up under concurrency.
	if req.ExternalAccountID != "" {
		existing, err := s.accountRepo.FindAccountByExternalID(ctx, req.ExternalAccountID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to check external account id", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to check external account id: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: external account id %s is already registered", apperrors.ErrConflict, req.ExternalAccountID)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:         uuid.NewString(),
		Name:              req.Name,
		AccountType:       accountType,
		Status:            domain.AccountActive,
		CurrencyCode:      req.CurrencyCode,
		ExternalAccountID: req.ExternalAccountID,
		Balance:           decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		}
		return nil, err
	}

	logger.Info("Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts by their IDs. IDs with no
// matching account are simply absent from the returned map; the caller
// decides whether that is an error.
func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to find accounts by IDs", slog.String("error", err.Error()))
		return nil, err
	}
	return accounts, nil
}

// ListAccounts retrieves a paginated list of accounts. The handler layer
// clamps the limit; the repository orders by (name, account_id) for a stable
// page sequence.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()), slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// UpdateAccountStatus overwrites the status of an account. This is a
// deliberately minimal state machine: any transition between ACTIVE,
// SUSPENDED and CLOSED is permitted here; "closed accounts reject further
// entries" is enforced by the posting engine, not by this method.
func (s *accountService) UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown account status %q", apperrors.ErrValidation, status)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account for status update", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.accountRepo.UpdateAccountStatus(ctx, accountID, status, now); err != nil {
		logger.Error("Failed to update account status", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	account.Status = status
	account.LastUpdatedAt = now

	logger.Info("Account status updated",
		slog.String("account_id", accountID),
		slog.String("status", string(status)))
	return account, nil
}
