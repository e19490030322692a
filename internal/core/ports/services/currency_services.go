package services

import (
	"context"

	"github.com/openfx/fxreport/internal/core/domain"
)

// ApplicationCurrencySvc manages the organisation's reporting currency set.
type ApplicationCurrencySvc interface {
	ListActive(ctx context.Context) ([]domain.ApplicationCurrency, error)
	ListDetails(ctx context.Context) ([]domain.ApplicationCurrencyDetail, error)
	Add(ctx context.Context, currencyCode, currencyName, notes string) (*domain.ApplicationCurrency, error)

	// Remove deactivates a currency, refusing to drop the last active one.
	Remove(ctx context.Context, currencyCode string) error
}
