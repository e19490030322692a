package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAggregate is the arithmetic mean of all stored rates for one currency
// over a month's working-day span. Derived on demand, never stored.
type MonthlyAggregate struct {
	Year               int             `json:"year"`
	Month              time.Month      `json:"month"`
	TargetCurrency     string          `json:"targetCurrency"`
	AverageRate        decimal.Decimal `json:"averageRate"`
	AverageInverseRate decimal.Decimal `json:"averageInverseRate"`
	DataPoints         int             `json:"dataPoints"`
	FirstDate          time.Time       `json:"firstDate"`
	LastDate           time.Time       `json:"lastDate"`
}

// ClosingRate is the rate recorded on the month's last working day.
// A currency with no record on exactly that day has no closing rate for the
// month, even when earlier data exists.
type ClosingRate struct {
	Year               int             `json:"year"`
	Month              time.Month      `json:"month"`
	TargetCurrency     string          `json:"targetCurrency"`
	ClosingRate        decimal.Decimal `json:"closingRate"`
	ClosingInverseRate decimal.Decimal `json:"closingInverseRate"`
	ClosingDate        time.Time       `json:"closingDate"`
}

// MonthlySummary is the outer join of MonthlyAggregate and ClosingRate for one
// currency-month. Either side may be absent, in which case its fields are nil.
type MonthlySummary struct {
	Year           int        `json:"year"`
	Month          time.Month `json:"month"`
	MonthName      string     `json:"monthName"`
	TargetCurrency string     `json:"targetCurrency"`

	AverageRate        *decimal.Decimal `json:"averageRate"`
	AverageInverseRate *decimal.Decimal `json:"averageInverseRate"`
	DataPoints         *int             `json:"dataPoints"`

	ClosingRate        *decimal.Decimal `json:"closingRate"`
	ClosingInverseRate *decimal.Decimal `json:"closingInverseRate"`
	ClosingDate        *time.Time       `json:"closingDate"`

	// RateVariance = closing - average; VariancePercent = 100 * variance / average.
	// Nil when either side is missing, or (for the percentage) when the average is zero.
	RateVariance    *decimal.Decimal `json:"rateVariance"`
	VariancePercent *decimal.Decimal `json:"variancePercent"`
}

// ReportingPeriod is a year-month that has stored data, with a completeness
// flag relative to today.
type ReportingPeriod struct {
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`
	IsComplete bool       `json:"isComplete"`
}

// ImportSummary reports the outcome of one ingestion run.
type ImportSummary struct {
	TablesSeen     int `json:"tablesSeen"`
	RecordsSaved   int `json:"recordsSaved"`
	RecordsUpdated int `json:"recordsUpdated"`
	DatesSkipped   int `json:"datesSkipped"`
}
