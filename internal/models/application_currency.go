package models

import (
	"database/sql"
	"time"
)

// ApplicationCurrency is the database shape of a configured reporting currency.
type ApplicationCurrency struct {
	CurrencyCode string
	CurrencyName string
	IsActive     bool
	AddedAt      time.Time
	Notes        sql.NullString
}
