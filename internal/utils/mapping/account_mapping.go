package mapping

import (
	"github.com/corefin/ledger_service/internal/core/domain"
	"github.com/corefin/ledger_service/internal/models"
)

// ToModelAccount converts a domain.Account to its storage row shape.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:         d.AccountID,
		Name:              d.Name,
		AccountType:       models.AccountType(d.AccountType),
		Status:            models.AccountStatus(d.Status),
		CurrencyCode:      d.CurrencyCode,
		ExternalAccountID: d.ExternalAccountID,
		Balance:           d.Balance,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAccount converts a storage row back to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:         m.AccountID,
		Name:              m.Name,
		AccountType:       domain.AccountType(m.AccountType),
		Status:            domain.AccountStatus(m.Status),
		CurrencyCode:      m.CurrencyCode,
		ExternalAccountID: m.ExternalAccountID,
		Balance:           m.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
