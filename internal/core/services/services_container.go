package services

import (
	portsrepo "github.com/corefin/ledger_service/internal/core/ports/repositories"
	portssvc "github.com/corefin/ledger_service/internal/core/ports/services"
)

// NewServiceContainer builds the service layer from the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	journalSvc := NewJournalService(repos.JournalRepo, repos.AccountRepo)

	return &portssvc.ServiceContainer{
		Account: accountSvc,
		Journal: journalSvc,
	}
}
