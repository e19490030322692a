package pgsql

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openfx/fxreport/internal/apperrors"
	"github.com/openfx/fxreport/internal/core/domain"
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
	"github.com/openfx/fxreport/internal/models"
	"github.com/openfx/fxreport/internal/utils/mapping"
)

// PgxApplicationCurrencyRepository implements the application currency
// configuration store using pgxpool.
type PgxApplicationCurrencyRepository struct {
	BaseRepository
}

// NewPgxApplicationCurrencyRepository creates a new PgxApplicationCurrencyRepository.
func NewPgxApplicationCurrencyRepository(db *pgxpool.Pool) *PgxApplicationCurrencyRepository {
	return &PgxApplicationCurrencyRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ApplicationCurrencyRepositoryFacade = (*PgxApplicationCurrencyRepository)(nil)

// ListActive returns all active application currencies ordered by code.
func (r *PgxApplicationCurrencyRepository) ListActive(ctx context.Context) ([]domain.ApplicationCurrency, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT currency_code, currency_name, is_active, added_at, notes
		FROM application_currencies
		WHERE is_active
		ORDER BY currency_code`,
	)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to list application currencies", err)
	}
	defer rows.Close()

	var currencies []domain.ApplicationCurrency
	for rows.Next() {
		var m models.ApplicationCurrency
		if err := rows.Scan(&m.CurrencyCode, &m.CurrencyName, &m.IsActive, &m.AddedAt, &m.Notes); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan application currency", err)
		}
		currencies = append(currencies, mapping.ToDomainApplicationCurrency(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("error iterating application currencies", err)
	}

	return currencies, nil
}

// CountActive returns the number of active application currencies.
func (r *PgxApplicationCurrencyRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM application_currencies WHERE is_active`,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewStoreUnavailableError("failed to count application currencies", err)
	}
	return count, nil
}

// ListDetails joins active application currencies against their stored rate
// coverage for the given base currency.
func (r *PgxApplicationCurrencyRepository) ListDetails(ctx context.Context, baseCurrency string) ([]domain.ApplicationCurrencyDetail, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT
			ac.currency_code, ac.currency_name, ac.is_active, ac.added_at, ac.notes,
			COUNT(er.rate_id) AS data_points,
			MIN(er.date) AS first_date,
			MAX(er.date) AS last_date
		FROM application_currencies ac
		LEFT JOIN exchange_rates er
			ON ac.currency_code = er.target_currency AND er.base_currency = $1
		WHERE ac.is_active
		GROUP BY ac.currency_code, ac.currency_name, ac.is_active, ac.added_at, ac.notes
		ORDER BY ac.currency_code`,
		strings.ToUpper(baseCurrency),
	)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to list application currency details", err)
	}
	defer rows.Close()

	var details []domain.ApplicationCurrencyDetail
	for rows.Next() {
		var m models.ApplicationCurrency
		var dataPoints int
		var firstDate, lastDate *time.Time
		if err := rows.Scan(&m.CurrencyCode, &m.CurrencyName, &m.IsActive, &m.AddedAt, &m.Notes,
			&dataPoints, &firstDate, &lastDate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan application currency detail", err)
		}
		details = append(details, domain.ApplicationCurrencyDetail{
			ApplicationCurrency: mapping.ToDomainApplicationCurrency(m),
			DataPoints:          dataPoints,
			FirstDate:           firstDate,
			LastDate:            lastDate,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("error iterating application currency details", err)
	}

	return details, nil
}

// Upsert inserts the currency or reactivates/renames an existing row.
func (r *PgxApplicationCurrencyRepository) Upsert(ctx context.Context, currency domain.ApplicationCurrency) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO application_currencies (currency_code, currency_name, is_active, added_at, notes)
		VALUES ($1, $2, TRUE, $3, $4)
		ON CONFLICT (currency_code) DO UPDATE
		SET currency_name = EXCLUDED.currency_name, is_active = TRUE, notes = EXCLUDED.notes`,
		strings.ToUpper(currency.CurrencyCode), currency.CurrencyName, currency.AddedAt, currency.Notes,
	)
	if err != nil {
		return apperrors.NewStoreUnavailableError("failed to upsert application currency", err)
	}
	return nil
}

// Deactivate soft deletes a currency.
func (r *PgxApplicationCurrencyRepository) Deactivate(ctx context.Context, currencyCode string) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE application_currencies SET is_active = FALSE
		WHERE currency_code = $1 AND is_active`,
		strings.ToUpper(currencyCode),
	)
	if err != nil {
		return apperrors.NewStoreUnavailableError("failed to deactivate application currency", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("application currency " + strings.ToUpper(currencyCode) + " not found")
	}
	return nil
}
