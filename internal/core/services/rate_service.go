package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openfx/fxreport/internal/core/domain"
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/utils/workcal"
)

// rateService exposes stored rate data for display and export.
type rateService struct {
	BaseService
	rateRepo portsrepo.RateReader
}

// NewRateService creates a new rate service.
func NewRateService(rateRepo portsrepo.RateReader) portssvc.RateSvc {
	return &rateService{rateRepo: rateRepo}
}

var _ portssvc.RateSvc = (*rateService)(nil)

func (s *rateService) ListRates(ctx context.Context, filter portsrepo.RateFilter) ([]domain.RateRecord, error) {
	filter.BaseCurrency = strings.ToUpper(filter.BaseCurrency)
	filter.TargetCurrencies = upperAll(filter.TargetCurrencies)

	records, err := s.rateRepo.ListRates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	if records == nil {
		records = []domain.RateRecord{}
	}
	return records, nil
}

func (s *rateService) TargetCurrencies(ctx context.Context, baseCurrency string) ([]string, error) {
	currencies, err := s.rateRepo.DistinctTargetCurrencies(ctx, strings.ToUpper(baseCurrency))
	if err != nil {
		return nil, fmt.Errorf("failed to list target currencies: %w", err)
	}
	if currencies == nil {
		currencies = []string{}
	}
	return currencies, nil
}

// ReportingPeriods lists every year-month with stored data, newest first.
// A month is complete once its last calendar day lies strictly in the past.
func (s *rateService) ReportingPeriods(ctx context.Context, baseCurrency string) ([]domain.ReportingPeriod, error) {
	months, err := s.rateRepo.DistinctYearMonths(ctx, strings.ToUpper(baseCurrency))
	if err != nil {
		return nil, fmt.Errorf("failed to list reporting periods: %w", err)
	}

	today := time.Now().UTC()
	periods := make([]domain.ReportingPeriod, 0, len(months))
	for _, ym := range months {
		periods = append(periods, domain.ReportingPeriod{
			Year:       ym.Year,
			Month:      ym.Month,
			IsComplete: workcal.IsMonthComplete(ym.Year, ym.Month, today),
		})
	}
	return periods, nil
}
