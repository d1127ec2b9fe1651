package services

import (
	"context"

	"github.com/corefin/ledger_service/internal/core/domain"
	portssvc "github.com/corefin/ledger_service/internal/core/ports/services"
	"github.com/corefin/ledger_service/internal/dto"
)

// RetryRunner re-runs a unit of work on transient storage conflicts.
type RetryRunner interface {
	Retry(ctx context.Context, operation func() error) error
}

// retryingJournalService wraps the posting operations with a retry runner.
// The posting engine surfaces deadlocks and serialization failures as
// retryable errors instead of retrying internally; this decorator is the
// caller boundary that does.
type retryingJournalService struct {
	portssvc.JournalSvcFacade
	runner RetryRunner
}

// NewRetryingJournalService decorates a journal service so that PostJournal
// and ReverseJournal are retried on transient storage conflicts. Reads pass
// through untouched.
func NewRetryingJournalService(inner portssvc.JournalSvcFacade, runner RetryRunner) portssvc.JournalSvcFacade {
	return &retryingJournalService{
		JournalSvcFacade: inner,
		runner:           runner,
	}
}

func (s *retryingJournalService) PostJournal(ctx context.Context, req dto.PostJournalRequest) (*domain.Journal, error) {
	var journal *domain.Journal
	err := s.runner.Retry(ctx, func() error {
		var postErr error
		journal, postErr = s.JournalSvcFacade.PostJournal(ctx, req)
		return postErr
	})
	if err != nil {
		return nil, err
	}
	return journal, nil
}

func (s *retryingJournalService) ReverseJournal(ctx context.Context, journalID string, reason string) (*domain.Journal, error) {
	var reversal *domain.Journal
	err := s.runner.Retry(ctx, func() error {
		var revErr error
		reversal, revErr = s.JournalSvcFacade.ReverseJournal(ctx, journalID, reason)
		return revErr
	})
	if err != nil {
		return nil, err
	}
	return reversal, nil
}
