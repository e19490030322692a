package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories into a provider.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:     NewPgxRateRepository(dbPool),
		CurrencyRepo: NewPgxApplicationCurrencyRepository(dbPool),
	}
}
