package mapping

import (
	"github.com/openfx/fxreport/internal/core/domain"
	"github.com/openfx/fxreport/internal/models"
)

// ToDomainApplicationCurrency converts a database currency row to its domain form.
func ToDomainApplicationCurrency(m models.ApplicationCurrency) domain.ApplicationCurrency {
	return domain.ApplicationCurrency{
		CurrencyCode: m.CurrencyCode,
		CurrencyName: m.CurrencyName,
		IsActive:     m.IsActive,
		AddedAt:      m.AddedAt,
		Notes:        m.Notes.String,
	}
}
