package domain

import "time"

// JournalStatus indicates the state of a journal.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// Journal represents a single, balanced financial event composed of multiple
// entries. A journal is created fully posted or not at all; after posting
// the only permitted mutation is the POSTED -> REVERSED transition made by a
// successful reversal of it.
type Journal struct {
	JournalID   string        `json:"journalID"`
	ReferenceID string        `json:"referenceID"` // caller-supplied idempotency key, globally unique
	Description string        `json:"description"`
	Status      JournalStatus `json:"status"`
	PostedAt    time.Time     `json:"postedAt"`
	// ReversalOfJournalID is set on a reversal journal and points at the
	// journal it reverses.
	ReversalOfJournalID *string `json:"reversalOfJournalID,omitempty"`
	// ReversedByJournalID is set on the original journal once it has been
	// reversed. A journal can be the target of at most one reversal.
	ReversedByJournalID *string `json:"reversedByJournalID,omitempty"`
	// Entries are loaded separately and populated on read paths.
	Entries []Entry `json:"entries,omitempty"`
	AuditFields
}

// IsReversal reports whether the journal itself reverses another journal.
func (j *Journal) IsReversal() bool {
	return j.ReversalOfJournalID != nil
}
