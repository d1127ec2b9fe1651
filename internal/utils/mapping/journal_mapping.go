package mapping

import (
	"github.com/corefin/ledger_service/internal/core/domain"
	"github.com/corefin/ledger_service/internal/models"
)

// ToModelJournal converts a domain.Journal to its storage row shape.
// Entries are persisted separately.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:           d.JournalID,
		ReferenceID:         d.ReferenceID,
		Description:         d.Description,
		Status:              models.JournalStatus(d.Status),
		PostedAt:            d.PostedAt,
		ReversalOfJournalID: d.ReversalOfJournalID,
		ReversedByJournalID: d.ReversedByJournalID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainJournal converts a storage row back to the domain representation.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:           m.JournalID,
		ReferenceID:         m.ReferenceID,
		Description:         m.Description,
		Status:              domain.JournalStatus(m.Status),
		PostedAt:            m.PostedAt,
		ReversalOfJournalID: m.ReversalOfJournalID,
		ReversedByJournalID: m.ReversedByJournalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToModelEntry converts a domain.Entry to its storage row shape.
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:      d.EntryID,
		JournalID:    d.JournalID,
		AccountID:    d.AccountID,
		EntryType:    models.EntryType(d.EntryType),
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		Description:  d.Description,
		PostedAt:     d.PostedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainEntry converts a storage row back to the domain representation.
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:      m.EntryID,
		JournalID:    m.JournalID,
		AccountID:    m.AccountID,
		EntryType:    domain.EntryType(m.EntryType),
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Description:  m.Description,
		PostedAt:     m.PostedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainEntrySlice converts a slice of entry rows.
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
