package dto

import (
	"fmt"

	"github.com/openfx/fxreport/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyAggregateResponse is the API shape of one currency's monthly average.
type MonthlyAggregateResponse struct {
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	MonthName          string          `json:"monthName"`
	TargetCurrency     string          `json:"targetCurrency"`
	AverageRate        decimal.Decimal `json:"averageRate"`
	AverageInverseRate decimal.Decimal `json:"averageInverseRate"`
	DataPoints         int             `json:"dataPoints"`
	FirstDate          string          `json:"firstDate"`
	LastDate           string          `json:"lastDate"`
}

// ToMonthlyAggregateResponse converts a domain.MonthlyAggregate to its API shape.
func ToMonthlyAggregateResponse(agg domain.MonthlyAggregate) MonthlyAggregateResponse {
	return MonthlyAggregateResponse{
		Year:               agg.Year,
		Month:              int(agg.Month),
		MonthName:          agg.Month.String(),
		TargetCurrency:     agg.TargetCurrency,
		AverageRate:        agg.AverageRate.Round(rateScale),
		AverageInverseRate: agg.AverageInverseRate.Round(rateScale),
		DataPoints:         agg.DataPoints,
		FirstDate:          agg.FirstDate.Format("2006-01-02"),
		LastDate:           agg.LastDate.Format("2006-01-02"),
	}
}

// ClosingRateResponse is the API shape of one currency's monthly closing rate.
type ClosingRateResponse struct {
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	MonthName          string          `json:"monthName"`
	TargetCurrency     string          `json:"targetCurrency"`
	ClosingRate        decimal.Decimal `json:"closingRate"`
	ClosingInverseRate decimal.Decimal `json:"closingInverseRate"`
	ClosingDate        string          `json:"closingDate"`
}

// ToClosingRateResponse converts a domain.ClosingRate to its API shape.
func ToClosingRateResponse(cr domain.ClosingRate) ClosingRateResponse {
	return ClosingRateResponse{
		Year:               cr.Year,
		Month:              int(cr.Month),
		MonthName:          cr.Month.String(),
		TargetCurrency:     cr.TargetCurrency,
		ClosingRate:        cr.ClosingRate.Round(rateScale),
		ClosingInverseRate: cr.ClosingInverseRate.Round(rateScale),
		ClosingDate:        cr.ClosingDate.Format("2006-01-02"),
	}
}

// MonthlySummaryResponse is the API shape of one summary row. Fields from an
// absent join side are null.
type MonthlySummaryResponse struct {
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	MonthName      string `json:"monthName"`
	TargetCurrency string `json:"targetCurrency"`

	AverageRate        *decimal.Decimal `json:"averageRate"`
	AverageInverseRate *decimal.Decimal `json:"averageInverseRate"`
	DataPoints         *int             `json:"dataPoints"`

	ClosingRate        *decimal.Decimal `json:"closingRate"`
	ClosingInverseRate *decimal.Decimal `json:"closingInverseRate"`
	ClosingDate        *string          `json:"closingDate"`

	RateVariance    *decimal.Decimal `json:"rateVariance"`
	VariancePercent *decimal.Decimal `json:"variancePercent"`
}

// ToMonthlySummaryResponse converts a domain.MonthlySummary to its API shape.
func ToMonthlySummaryResponse(s domain.MonthlySummary) MonthlySummaryResponse {
	resp := MonthlySummaryResponse{
		Year:               s.Year,
		Month:              int(s.Month),
		MonthName:          s.MonthName,
		TargetCurrency:     s.TargetCurrency,
		AverageRate:        roundPtr(s.AverageRate, rateScale),
		AverageInverseRate: roundPtr(s.AverageInverseRate, rateScale),
		DataPoints:         s.DataPoints,
		ClosingRate:        roundPtr(s.ClosingRate, rateScale),
		ClosingInverseRate: roundPtr(s.ClosingInverseRate, rateScale),
		RateVariance:       roundPtr(s.RateVariance, rateScale),
		VariancePercent:    roundPtr(s.VariancePercent, variancePercentScale),
	}
	if s.ClosingDate != nil {
		d := s.ClosingDate.Format("2006-01-02")
		resp.ClosingDate = &d
	}
	return resp
}

// ToListMonthlySummaryResponse converts summary rows to API shapes.
func ToListMonthlySummaryResponse(summaries []domain.MonthlySummary) []MonthlySummaryResponse {
	responses := make([]MonthlySummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = ToMonthlySummaryResponse(s)
	}
	return responses
}

// ReportingPeriodResponse is the API shape of one available reporting period.
type ReportingPeriodResponse struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	DisplayName string `json:"displayName"`
	IsComplete  bool   `json:"isComplete"`
}

// ToReportingPeriodResponse converts a domain.ReportingPeriod to its API shape.
func ToReportingPeriodResponse(p domain.ReportingPeriod) ReportingPeriodResponse {
	display := fmt.Sprintf("%s %d", p.Month.String(), p.Year)
	if !p.IsComplete {
		display += " (In Progress)"
	}
	return ReportingPeriodResponse{
		Year:        p.Year,
		Month:       int(p.Month),
		DisplayName: display,
		IsComplete:  p.IsComplete,
	}
}
