package fxrates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/domain/catalogs/currency"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/latest/USD" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func testConfig(url string) Config {
	return Config{BaseURL: url, Timeout: time.Second, CacheTTL: time.Minute, CacheSize: 4}
}

func TestClient_RateIsCached(t *testing.T) {
	srv, hits := newServer(t, http.StatusOK, `{"base":"USD","date":"2024-05-01","rates":{"INR":83.4125,"EUR":0.9312}}`)
	c := New(testConfig(srv.URL))
	ctx := context.Background()

	rate, err := c.Rate(ctx, "USD", "INR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("83.4125")))

	rate, err = c.Rate(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "0.9312", rate.String())
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_UnknownTarget(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"base":"USD","rates":{"INR":83.4}}`)
	_, err := New(testConfig(srv.URL)).Rate(context.Background(), "USD", "XYZ")
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
}

func TestClient_UpstreamFailure(t *testing.T) {
	srv, hits := newServer(t, http.StatusInternalServerError, `{"error":"down"}`)
	c := New(testConfig(srv.URL))

	_, err := c.Rate(context.Background(), "USD", "INR")
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeExternalService))
	assert.Equal(t, http.StatusBadGateway, apperror.GetHTTPStatus(err))

	_, err = c.Rate(context.Background(), "USD", "INR")
	require.Error(t, err)
	assert.Equal(t, int32(2), hits.Load(), "failures are not cached")
}

func TestClient_EmptyTable(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"base":"USD","rates":{}}`)
	_, err := New(testConfig(srv.URL)).Latest(context.Background(), "USD")
	assert.True(t, apperror.HasCode(err, apperror.CodeExternalService))
}

func TestClient_ServesConverter(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"base":"USD","rates":{"INR":83.4125}}`)
	conv := currency.NewConverter(New(testConfig(srv.URL)))

	got, err := conv.Convert(context.Background(), decimal.RequireFromString("12.5"), "USD", "INR")
	require.NoError(t, err)
	assert.Equal(t, "1042.66", got.Result.String())
}
