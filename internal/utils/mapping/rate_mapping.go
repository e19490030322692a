package mapping

import (
	"github.com/openfx/fxreport/internal/core/domain"
	"github.com/openfx/fxreport/internal/models"
)

// ToDomainRateRecord converts a database rate row to its domain form.
func ToDomainRateRecord(m models.RateRecord) domain.RateRecord {
	return domain.RateRecord{
		RateID:         m.RateID,
		Date:           m.Date,
		BaseCurrency:   m.BaseCurrency,
		TargetCurrency: m.TargetCurrency,
		Rate:           m.Rate,
		InverseRate:    m.InverseRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToModelRateRecord converts a domain rate record to its database form.
func ToModelRateRecord(d domain.RateRecord) models.RateRecord {
	return models.RateRecord{
		RateID:         d.RateID,
		Date:           d.Date,
		BaseCurrency:   d.BaseCurrency,
		TargetCurrency: d.TargetCurrency,
		Rate:           d.Rate,
		InverseRate:    d.InverseRate,
		CreatedAt:      d.CreatedAt,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
}
