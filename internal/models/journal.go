package models

import "time"

// JournalStatus mirrors domain.JournalStatus at the storage boundary.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// Journal is the row shape of the journals table. ReferenceID carries a
// unique constraint; the reversal link columns are nullable.
type Journal struct {
	JournalID           string        `db:"journal_id"`
	ReferenceID         string        `db:"reference_id"`
	Description         string        `db:"description"`
	Status              JournalStatus `db:"status"`
	PostedAt            time.Time     `db:"posted_at"`
	ReversalOfJournalID *string       `db:"reversal_of_journal_id"`
	ReversedByJournalID *string       `db:"reversed_by_journal_id"`
	AuditFields
}
