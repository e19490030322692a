package domain

import "time"

// AuditFields holds standard audit information for stored entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// YearMonth identifies a reporting period.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}
