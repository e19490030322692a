package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateRecord is a single stored exchange rate quote for one day.
// Rate is target currency per 1 unit of base currency; InverseRate is the
// reciprocal. At most one record exists per (date, base, target) triple and
// re-ingestion replaces the value in place.
type RateRecord struct {
	RateID         string          `json:"rateID"`
	Date           time.Time       `json:"date"` // day granularity, UTC midnight
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	InverseRate    decimal.Decimal `json:"inverseRate"`
	AuditFields
}

// ReferenceRateTable is one day of quotes against a common reference currency,
// as published by the source feed (e.g. ECB rates quoted against EUR).
// Rates maps currency code to units of that currency per 1 reference unit;
// a currency with no quote for the day is simply absent from the map.
type ReferenceRateTable struct {
	Date              time.Time
	ReferenceCurrency string
	Rates             map[string]decimal.Decimal
}
