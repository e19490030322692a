package dto

import (
	"github.com/openfx/fxreport/internal/core/domain"
)

// AddApplicationCurrencyRequest defines the payload for registering a
// reporting currency.
type AddApplicationCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
	CurrencyName string `json:"currencyName" binding:"omitempty,max=100"`
	Notes        string `json:"notes" binding:"omitempty,max=500"`
}

// ApplicationCurrencyResponse is the API shape of a configured currency.
type ApplicationCurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	CurrencyName string `json:"currencyName"`
	AddedAt      string `json:"addedAt"`
	Notes        string `json:"notes,omitempty"`
}

// ToApplicationCurrencyResponse converts a domain currency to its API shape.
func ToApplicationCurrencyResponse(c domain.ApplicationCurrency) ApplicationCurrencyResponse {
	return ApplicationCurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		CurrencyName: c.CurrencyName,
		AddedAt:      c.AddedAt.Format("2006-01-02"),
		Notes:        c.Notes,
	}
}

// ToListApplicationCurrencyResponse converts configured currencies to API shapes.
func ToListApplicationCurrencyResponse(currencies []domain.ApplicationCurrency) []ApplicationCurrencyResponse {
	responses := make([]ApplicationCurrencyResponse, len(currencies))
	for i, c := range currencies {
		responses[i] = ToApplicationCurrencyResponse(c)
	}
	return responses
}

// ApplicationCurrencyDetailResponse adds stored data coverage per currency.
type ApplicationCurrencyDetailResponse struct {
	ApplicationCurrencyResponse
	DataPoints int     `json:"dataPoints"`
	FirstDate  *string `json:"firstDate"`
	LastDate   *string `json:"lastDate"`
}

// ToApplicationCurrencyDetailResponse converts a detail row to its API shape.
func ToApplicationCurrencyDetailResponse(d domain.ApplicationCurrencyDetail) ApplicationCurrencyDetailResponse {
	resp := ApplicationCurrencyDetailResponse{
		ApplicationCurrencyResponse: ToApplicationCurrencyResponse(d.ApplicationCurrency),
		DataPoints:                  d.DataPoints,
	}
	if d.FirstDate != nil {
		s := d.FirstDate.Format("2006-01-02")
		resp.FirstDate = &s
	}
	if d.LastDate != nil {
		s := d.LastDate.Format("2006-01-02")
		resp.LastDate = &s
	}
	return resp
}
