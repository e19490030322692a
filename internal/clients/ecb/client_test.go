package ecb_test

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openfx/fxreport/internal/clients/ecb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const historyCSV = `Date,USD,JPY,GBP,
2024-08-02,1.0920,160.45,0.8530,
2024-08-01,1.0810,N/A,0.8540,
2024-07-31,1.0830,159.90,0.8550,
`

func zipArchive(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func historyServer(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchHistory(t *testing.T) {
	archive := zipArchive(t, "eurofxref-hist.csv", historyCSV)
	srv := historyServer(t, http.StatusOK, archive)
	client := ecb.NewClient(srv.URL, srv.Client())

	since := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	tables, err := client.FetchHistory(context.Background(), since)
	require.NoError(t, err)

	// 2024-07-31 falls before the window; the rest come back oldest first.
	require.Len(t, tables, 2)
	assert.Equal(t, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), tables[0].Date)
	assert.Equal(t, time.Date(2024, time.August, 2, 0, 0, 0, 0, time.UTC), tables[1].Date)

	first := tables[0]
	assert.Equal(t, "EUR", first.ReferenceCurrency)
	assert.True(t, first.Rates["USD"].Equal(decimal.RequireFromString("1.0810")))
	assert.True(t, first.Rates["GBP"].Equal(decimal.RequireFromString("0.8540")))
	// The N/A cell means no JPY quote was published that day.
	_, hasJPY := first.Rates["JPY"]
	assert.False(t, hasJPY)

	second := tables[1]
	assert.True(t, second.Rates["JPY"].Equal(decimal.RequireFromString("160.45")))
}

func TestFetchHistory_SinceFiltersEverything(t *testing.T) {
	archive := zipArchive(t, "eurofxref-hist.csv", historyCSV)
	srv := historyServer(t, http.StatusOK, archive)
	client := ecb.NewClient(srv.URL, srv.Client())

	tables, err := client.FetchHistory(context.Background(), time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestFetchHistory_HTTPError(t *testing.T) {
	srv := historyServer(t, http.StatusBadGateway, nil)
	client := ecb.NewClient(srv.URL, srv.Client())

	_, err := client.FetchHistory(context.Background(), time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchHistory_NotAnArchive(t *testing.T) {
	srv := historyServer(t, http.StatusOK, []byte("plain text"))
	client := ecb.NewClient(srv.URL, srv.Client())

	_, err := client.FetchHistory(context.Background(), time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archive")
}

func TestFetchHistory_BadHeader(t *testing.T) {
	archive := zipArchive(t, "eurofxref-hist.csv", "Datum,USD\n2024-08-01,1.08\n")
	srv := historyServer(t, http.StatusOK, archive)
	client := ecb.NewClient(srv.URL, srv.Client())

	_, err := client.FetchHistory(context.Background(), time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}
