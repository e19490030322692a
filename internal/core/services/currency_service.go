package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openfx/fxreport/internal/apperrors"
	"github.com/openfx/fxreport/internal/core/domain"
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
)

// applicationCurrencyService manages the configured reporting currency set.
type applicationCurrencyService struct {
	BaseService
	currencyRepo portsrepo.ApplicationCurrencyRepositoryFacade
	baseCurrency string
}

// NewApplicationCurrencyService creates a new application currency service.
func NewApplicationCurrencyService(currencyRepo portsrepo.ApplicationCurrencyRepositoryFacade, baseCurrency string) portssvc.ApplicationCurrencySvc {
	return &applicationCurrencyService{
		currencyRepo: currencyRepo,
		baseCurrency: baseCurrency,
	}
}

var _ portssvc.ApplicationCurrencySvc = (*applicationCurrencyService)(nil)

func (s *applicationCurrencyService) ListActive(ctx context.Context) ([]domain.ApplicationCurrency, error) {
	currencies, err := s.currencyRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list application currencies: %w", err)
	}
	if currencies == nil {
		currencies = []domain.ApplicationCurrency{}
	}
	return currencies, nil
}

func (s *applicationCurrencyService) ListDetails(ctx context.Context) ([]domain.ApplicationCurrencyDetail, error) {
	details, err := s.currencyRepo.ListDetails(ctx, s.baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to list application currency details: %w", err)
	}
	if details == nil {
		details = []domain.ApplicationCurrencyDetail{}
	}
	return details, nil
}

// Add registers a currency, reactivating it if it was removed earlier.
func (s *applicationCurrencyService) Add(ctx context.Context, currencyCode, currencyName, notes string) (*domain.ApplicationCurrency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	if code == strings.ToUpper(s.baseCurrency) {
		return nil, fmt.Errorf("%w: base currency %s is implicit and cannot be added", apperrors.ErrValidation, code)
	}

	name := strings.TrimSpace(currencyName)
	if name == "" {
		name = code
	}

	currency := domain.ApplicationCurrency{
		CurrencyCode: code,
		CurrencyName: name,
		IsActive:     true,
		AddedAt:      time.Now(),
		Notes:        notes,
	}

	if err := s.currencyRepo.Upsert(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to add application currency: %w", err)
	}

	return &currency, nil
}

// Remove deactivates a currency. The configuration must always keep at least
// one active currency.
func (s *applicationCurrencyService) Remove(ctx context.Context, currencyCode string) error {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(code) != 3 {
		return fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	active, err := s.currencyRepo.CountActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to count active currencies: %w", err)
	}
	if active <= 1 {
		return fmt.Errorf("%w: must keep at least one application currency", apperrors.ErrValidation)
	}

	if err := s.currencyRepo.Deactivate(ctx, code); err != nil {
		return fmt.Errorf("failed to remove application currency: %w", err)
	}
	return nil
}
