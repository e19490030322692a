package dto

import (
	"github.com/openfx/fxreport/internal/core/domain"
	"github.com/shopspring/decimal"
)

// rateScale is the presentation rounding for monetary rate fields. Averaging
// and triangulation run over unrounded values; rounding happens exactly once,
// here at the API boundary.
const rateScale = 6

// variancePercentScale is the presentation rounding for variance percentages.
const variancePercentScale = 2

// RateRecordResponse is the API shape of one stored rate.
type RateRecordResponse struct {
	Date           string          `json:"date"`
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	InverseRate    decimal.Decimal `json:"inverseRate"`
}

// ToRateRecordResponse converts a domain.RateRecord to its API shape.
func ToRateRecordResponse(rec domain.RateRecord) RateRecordResponse {
	return RateRecordResponse{
		Date:           rec.Date.Format("2006-01-02"),
		BaseCurrency:   rec.BaseCurrency,
		TargetCurrency: rec.TargetCurrency,
		Rate:           rec.Rate.Round(rateScale),
		InverseRate:    rec.InverseRate.Round(rateScale),
	}
}

// ToListRateRecordResponse converts a slice of rate records to API shapes.
func ToListRateRecordResponse(records []domain.RateRecord) []RateRecordResponse {
	responses := make([]RateRecordResponse, len(records))
	for i, rec := range records {
		responses[i] = ToRateRecordResponse(rec)
	}
	return responses
}

func roundPtr(d *decimal.Decimal, scale int32) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := d.Round(scale)
	return &r
}
