package domain

import "time"

// ApplicationCurrency is a currency the organisation reports in. Removal is a
// soft delete: the row stays, IsActive flips off.
type ApplicationCurrency struct {
	CurrencyCode string    `json:"currencyCode"` // Primary Key (e.g., "USD")
	CurrencyName string    `json:"currencyName"` // e.g., "US Dollar"
	IsActive     bool      `json:"isActive"`
	AddedAt      time.Time `json:"addedAt"`
	Notes        string    `json:"notes,omitempty"`
}

// ApplicationCurrencyDetail joins an application currency against its stored
// rate coverage.
type ApplicationCurrencyDetail struct {
	ApplicationCurrency
	DataPoints int        `json:"dataPoints"`
	FirstDate  *time.Time `json:"firstDate"`
	LastDate   *time.Time `json:"lastDate"`
}
