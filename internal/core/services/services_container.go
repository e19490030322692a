package services

import (
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fetcher portssvc.ReferenceRateFetcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Triangulation = NewTriangulationService()
	container.Rates = NewRateService(repos.RateRepo)
	container.Aggregation = NewAggregationService(repos.RateRepo)

	// Summary composes the two aggregate queries, so it depends on the
	// aggregation service rather than the repository directly.
	container.Summary = NewSummaryService(container.Aggregation)

	container.Ingestion = NewIngestionService(fetcher, container.Triangulation, repos.RateRepo, cfg.BaseCurrency)
	container.Currency = NewApplicationCurrencyService(repos.CurrencyRepo, cfg.BaseCurrency)

	return container
}
