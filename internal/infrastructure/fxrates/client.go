// Package fxrates fetches exchange rates from an HTTP rates service.
//
// The service is expected to answer GET {baseURL}/latest/{base} with
//
//	{"base": "USD", "date": "2024-05-01", "rates": {"INR": 83.41, "EUR": 0.93}}
//
// Rate tables are cached per base currency for the configured TTL.
package fxrates

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/domain/catalogs/currency"
	"storeadmin/pkg/logger"
)

const serviceName = "exchange rate service"

var tracer = otel.Tracer("storeadmin/fxrates")

var _ currency.RateProvider = (*Client)(nil)

// Config configures the client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	CacheTTL   time.Duration
	CacheSize  int
	RetryCount int
}

// Table is one rate table as returned by the service.
type Table struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Client is a caching exchange rate client.
type Client struct {
	http  *resty.Client
	cache *expirable.LRU[string, *Table]
}

// New creates a client.
func New(cfg Config) *Client {
	size := cfg.CacheSize
	if size <= 0 {
		size = 256
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)
	httpClient.AddRetryCondition(retryCondition)

	return &Client{
		http:  httpClient,
		cache: expirable.NewLRU[string, *Table](size, nil, cfg.CacheTTL),
	}
}

// retryCondition retries network errors and server-side failures.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	return r.StatusCode() >= http.StatusInternalServerError || r.StatusCode() == http.StatusTooManyRequests
}

// Rate implements currency.RateProvider.
func (c *Client) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	table, err := c.Latest(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}
	rate, ok := table.Rates[to]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, apperror.NewInvalidInput("to", fmt.Sprintf("no exchange rate from %s to %s", from, to))
	}
	return rate, nil
}

// Latest returns the rate table for base, from cache when fresh.
func (c *Client) Latest(ctx context.Context, base string) (*Table, error) {
	if t, ok := c.cache.Get(base); ok {
		return t, nil
	}

	ctx, span := tracer.Start(ctx, "fxrates.latest")
	defer span.End()
	span.SetAttributes(attribute.String("fx.base", base))

	var table Table
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("base", base).
		SetResult(&table).
		Get("/latest/{base}")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, apperror.NewExternalService(serviceName, err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if resp.IsError() {
		err := fmt.Errorf("GET %s: status %d", resp.Request.URL, resp.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, apperror.NewExternalService(serviceName, err)
	}
	if len(table.Rates) == 0 {
		return nil, apperror.NewExternalService(serviceName, fmt.Errorf("empty rate table for %s", base))
	}

	c.cache.Add(base, &table)
	logger.Debug(ctx, "exchange rates refreshed", "base", base, "date", table.Date, "rates", len(table.Rates))
	return &table, nil
}
