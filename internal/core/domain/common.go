package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// DateLayout is the calendar-date layout used for transaction dates.
// Transaction dates are plain calendar values: they are compared and grouped
// as YYYY-MM-DD strings, never converted to time instants, so the host
// timezone can never shift a transaction into a neighbouring day.
const DateLayout = "2006-01-02"
