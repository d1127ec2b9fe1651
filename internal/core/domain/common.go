package domain

import "time"

// MoneyScale is the canonical number of fractional digits for all monetary
// amounts. Rounding to this scale happens once, when an entry is created,
// and never again during balance accumulation.
const MoneyScale = 4

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
