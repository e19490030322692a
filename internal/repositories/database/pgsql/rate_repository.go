package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openfx/fxreport/internal/apperrors"
	"github.com/openfx/fxreport/internal/core/domain"
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
	"github.com/openfx/fxreport/internal/models"
	"github.com/openfx/fxreport/internal/utils/mapping"
)

// PgxRateRepository implements the ports RateRepositoryFacade using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

// NewPgxRateRepository creates a new PgxRateRepository.
func NewPgxRateRepository(db *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

const rateColumns = `rate_id, date, base_currency, target_currency, rate, inverse_rate, created_at, last_updated_at`

// ListRates retrieves rate records matching the filter, ordered by date
// descending then target currency ascending.
func (r *PgxRateRepository) ListRates(ctx context.Context, filter portsrepo.RateFilter) ([]domain.RateRecord, error) {
	query := `SELECT ` + rateColumns + ` FROM exchange_rates WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.BaseCurrency != "" {
		query += fmt.Sprintf(" AND base_currency = $%d", argNum)
		args = append(args, strings.ToUpper(filter.BaseCurrency))
		argNum++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", argNum)
		args = append(args, *filter.From)
		argNum++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", argNum)
		args = append(args, *filter.To)
		argNum++
	}

	if len(filter.TargetCurrencies) > 0 {
		query += fmt.Sprintf(" AND target_currency = ANY($%d)", argNum)
		args = append(args, filter.TargetCurrencies)
		argNum++
	}

	query += " ORDER BY date DESC, target_currency ASC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to list rates", err)
	}
	defer rows.Close()

	var records []domain.RateRecord
	for rows.Next() {
		var m models.RateRecord
		if err := rows.Scan(
			&m.RateID, &m.Date, &m.BaseCurrency, &m.TargetCurrency,
			&m.Rate, &m.InverseRate, &m.CreatedAt, &m.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate record", err)
		}
		records = append(records, mapping.ToDomainRateRecord(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("error iterating rate records", err)
	}

	return records, nil
}

// SaveRates upserts records keyed on (date, base_currency, target_currency).
// Within one transaction each record either replaces the existing row's value
// or inserts a new row; re-importing a feed never duplicates data.
func (r *PgxRateRepository) SaveRates(ctx context.Context, records []domain.RateRecord) (int, int, error) {
	if len(records) == 0 {
		return 0, 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}

	var inserted, updated int
	for _, rec := range records {
		m := mapping.ToModelRateRecord(rec)
		m.BaseCurrency = strings.ToUpper(m.BaseCurrency)
		m.TargetCurrency = strings.ToUpper(m.TargetCurrency)

		var existingID string
		err := tx.QueryRow(ctx,
			`SELECT rate_id FROM exchange_rates
			WHERE date = $1 AND base_currency = $2 AND target_currency = $3`,
			m.Date, m.BaseCurrency, m.TargetCurrency,
		).Scan(&existingID)

		switch {
		case err == nil:
			_, err = tx.Exec(ctx, `
				UPDATE exchange_rates
				SET rate = $1, inverse_rate = $2, last_updated_at = $3
				WHERE rate_id = $4`,
				m.Rate, m.InverseRate, m.LastUpdatedAt, existingID,
			)
			if err == nil {
				updated++
			}
		case errors.Is(err, pgx.ErrNoRows):
			_, err = tx.Exec(ctx, `
				INSERT INTO exchange_rates (
					rate_id, date, base_currency, target_currency, rate, inverse_rate,
					created_at, last_updated_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				m.RateID, m.Date, m.BaseCurrency, m.TargetCurrency,
				m.Rate, m.InverseRate, m.CreatedAt, m.LastUpdatedAt,
			)
			if err == nil {
				inserted++
			}
		}

		if err != nil {
			_ = r.Rollback(ctx, tx)
			return 0, 0, apperrors.NewStoreUnavailableError("failed to save rate record", err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, 0, err
	}
	return inserted, updated, nil
}

// DistinctTargetCurrencies returns every target currency stored against the base.
func (r *PgxRateRepository) DistinctTargetCurrencies(ctx context.Context, baseCurrency string) ([]string, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT DISTINCT target_currency FROM exchange_rates
		WHERE base_currency = $1
		ORDER BY target_currency`,
		strings.ToUpper(baseCurrency),
	)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to list target currencies", err)
	}
	defer rows.Close()

	var currencies []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan target currency", err)
		}
		currencies = append(currencies, code)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("error iterating target currencies", err)
	}

	return currencies, nil
}

// DistinctYearMonths returns every year-month with stored data, newest first.
func (r *PgxRateRepository) DistinctYearMonths(ctx context.Context, baseCurrency string) ([]domain.YearMonth, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT DISTINCT EXTRACT(YEAR FROM date)::int AS year, EXTRACT(MONTH FROM date)::int AS month
		FROM exchange_rates
		WHERE base_currency = $1
		ORDER BY year DESC, month DESC`,
		strings.ToUpper(baseCurrency),
	)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to list year months", err)
	}
	defer rows.Close()

	var months []domain.YearMonth
	for rows.Next() {
		var year, month int
		if err := rows.Scan(&year, &month); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan year month", err)
		}
		months = append(months, domain.YearMonth{Year: year, Month: time.Month(month)})
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("error iterating year months", err)
	}

	return months, nil
}
