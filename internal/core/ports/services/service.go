package services

// ServiceContainer holds all service interfaces for handler wiring.
type ServiceContainer struct {
	Rates         RateSvc
	Triangulation TriangulationSvc
	Aggregation   AggregationSvc
	Summary       SummarySvc
	Ingestion     IngestionSvc
	Currency      ApplicationCurrencySvc
}
