package repositories

import (
	"context"

	"github.com/openfx/fxreport/internal/core/domain"
)

// ApplicationCurrencyReader defines read operations for the application
// currency configuration.
type ApplicationCurrencyReader interface {
	ListActive(ctx context.Context) ([]domain.ApplicationCurrency, error)
	CountActive(ctx context.Context) (int, error)

	// ListDetails joins active application currencies against their stored
	// rate coverage for the given base currency.
	ListDetails(ctx context.Context, baseCurrency string) ([]domain.ApplicationCurrencyDetail, error)
}

// ApplicationCurrencyWriter defines write operations for the application
// currency configuration.
type ApplicationCurrencyWriter interface {
	// Upsert inserts the currency or reactivates/renames an existing row.
	Upsert(ctx context.Context, currency domain.ApplicationCurrency) error

	// Deactivate soft deletes a currency. Returns apperrors.ErrNotFound when
	// no active row matches.
	Deactivate(ctx context.Context, currencyCode string) error
}

// ApplicationCurrencyRepositoryFacade combines all application currency operations.
type ApplicationCurrencyRepositoryFacade interface {
	ApplicationCurrencyReader
	ApplicationCurrencyWriter
}
