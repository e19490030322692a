// Package ecb fetches the European Central Bank's historical euro foreign
// exchange reference rates. The ECB publishes them as a ZIP archive holding a
// single CSV file: one row per reference date, one column per currency, each
// cell the number of currency units per 1 EUR ("N/A" when no quote was set).
package ecb

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/openfx/fxreport/internal/core/domain"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	// DefaultHistoryURL is the ECB's full historical reference rate archive.
	DefaultHistoryURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist.zip"

	// ReferenceCurrency is the currency all ECB quotes are expressed against.
	ReferenceCurrency = "EUR"
)

// Client downloads and parses ECB reference rate history.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a new ECB client. A nil httpClient gets a 60 second
// timeout default, matching the feed's occasionally slow archive responses.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultHistoryURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{url: url, httpClient: httpClient}
}

var _ portssvc.ReferenceRateFetcher = (*Client)(nil)

// FetchHistory downloads the archive and returns one reference table per
// published date on or after since, oldest first.
func (c *Client) FetchHistory(ctx context.Context, since time.Time) ([]domain.ReferenceRateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download ECB rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ECB rates download failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ECB response body: %w", err)
	}

	csvData, err := extractCSV(body)
	if err != nil {
		return nil, err
	}

	return parseHistoryCSV(csvData, since)
}

// extractCSV opens the downloaded ZIP and returns the contents of its first
// file (conventionally eurofxref-hist.csv).
func extractCSV(archive []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("failed to open ECB archive: %w", err)
	}
	if len(zr.File) == 0 {
		return nil, fmt.Errorf("ECB archive contains no files")
	}

	f, err := zr.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s in ECB archive: %w", zr.File[0].Name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s in ECB archive: %w", zr.File[0].Name, err)
	}
	return data, nil
}

// parseHistoryCSV converts the raw CSV into reference tables. Cells that are
// empty, "N/A" or unparseable are treated as missing quotes for that date.
func parseHistoryCSV(data []byte, since time.Time) ([]domain.ReferenceRateTable, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // the feed carries a trailing empty column

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read ECB CSV header: %w", err)
	}
	if len(header) < 2 || strings.TrimSpace(header[0]) != "Date" {
		return nil, fmt.Errorf("unexpected ECB CSV header: %v", header)
	}

	currencies := make([]string, len(header))
	for i := 1; i < len(header); i++ {
		currencies[i] = strings.ToUpper(strings.TrimSpace(header[i]))
	}

	var tables []domain.ReferenceRateTable
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read ECB CSV row: %w", err)
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(row[0]), time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q in ECB CSV: %w", row[0], err)
		}
		if date.Before(since) {
			continue
		}

		rates := make(map[string]decimal.Decimal, len(row)-1)
		for i := 1; i < len(row) && i < len(currencies); i++ {
			code := currencies[i]
			if code == "" {
				continue
			}
			cell := strings.TrimSpace(row[i])
			if cell == "" || strings.EqualFold(cell, "N/A") {
				continue
			}
			rate, err := decimal.NewFromString(cell)
			if err != nil {
				continue
			}
			rates[code] = rate
		}

		tables = append(tables, domain.ReferenceRateTable{
			Date:              date,
			ReferenceCurrency: ReferenceCurrency,
			Rates:             rates,
		})
	}

	sort.Slice(tables, func(i, j int) bool { return tables[i].Date.Before(tables[j].Date) })
	return tables, nil
}
