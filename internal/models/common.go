package models

import "time"

// AuditFields holds the audit columns shared by all ledger tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
