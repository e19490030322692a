package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateRecord is the database shape of a stored exchange rate row.
type RateRecord struct {
	RateID         string
	Date           time.Time
	BaseCurrency   string
	TargetCurrency string
	Rate           decimal.Decimal
	InverseRate    decimal.Decimal
	CreatedAt      time.Time
	LastUpdatedAt  time.Time
}
