// Package catalog provides a resilient client for the product catalog service.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"

	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/retry"
)

// ProductStatusActive marks a product that can be ordered.
const ProductStatusActive = "ACTIVE"

// Error codes returned by the client.
const (
	CodeProductNotFound     = "PRODUCT_NOT_FOUND"
	CodeCatalogUnavailable  = "CATALOG_UNAVAILABLE"
	CodeCatalogRejected     = "CATALOG_REJECTED"
	CodeInvalidCatalogReply = "INVALID_CATALOG_PAYLOAD"
)

// Product is the catalog view of a product used for pricing orders.
type Product struct {
	ID     int64
	Price  decimal.Decimal
	Status string
}

// Client looks up products in the catalog.
type Client interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]Product, error)
}

// Config holds catalog client configuration
type Config struct {
	BaseURL                 string
	ConnectTimeout          time.Duration
	ReadTimeout             time.Duration
	RetryMaxAttempts        int
	RetryBackoff            time.Duration
	BreakerFailureThreshold int
	BreakerTimeout          time.Duration
}

type productResponse struct {
	ID     *int64           `json:"id"`
	Price  *decimal.Decimal `json:"price"`
	Status string           `json:"status"`
}

// statusError is a non-2xx catalog response.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("catalog responded with status %d", e.code)
}

var errInvalidPayload = errors.New("invalid product payload from catalog")

// HTTPClient calls the catalog over HTTP with retries and a circuit breaker.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	retry      retry.Config
	logger     *slog.Logger
}

// NewHTTPClient creates a new HTTPClient
func NewHTTPClient(cfg Config, logger *slog.Logger) *HTTPClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext
	transport.ResponseHeaderTimeout = cfg.ReadTimeout

	threshold := uint32(max(cfg.BreakerFailureThreshold, 1)) //nolint:gosec
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &HTTPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Transport: transport},
		breaker:    breaker,
		retry: retry.Config{
			MaxAttempts: cfg.RetryMaxAttempts,
			Backoff:     cfg.RetryBackoff,
			Retryable:   isTransient,
		},
		logger: logger,
	}
}

// GetProducts returns the catalog entry for every id. Duplicate ids are looked up once.
// Every requested id must be present in the result, otherwise a not found error is returned.
func (c *HTTPClient) GetProducts(ctx context.Context, ids []int64) (map[int64]Product, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return map[int64]Product{}, nil
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		var products []productResponse
		err := retry.Do(ctx, c.retry, func(ctx context.Context) error {
			var fetchErr error
			products, fetchErr = c.fetch(ctx, ids)
			return fetchErr
		})
		return products, err
	})
	if err != nil {
		return nil, c.mapError(err)
	}

	products := make(map[int64]Product, len(ids))
	for _, p := range result.([]productResponse) {
		if p.ID == nil || p.Price == nil {
			return nil, apperrors.NewCoded(apperrors.ErrConflict, CodeInvalidCatalogReply, errInvalidPayload.Error())
		}
		products[*p.ID] = Product{ID: *p.ID, Price: *p.Price, Status: p.Status}
	}

	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, apperrors.NewCoded(
				apperrors.ErrNotFound,
				CodeProductNotFound,
				fmt.Sprintf("product not found with id: %d", id),
			)
		}
	}

	return products, nil
}

func (c *HTTPClient) fetch(ctx context.Context, ids []int64) ([]productResponse, error) {
	query := url.Values{}
	for _, id := range ids {
		query.Add("ids", strconv.FormatInt(id, 10))
	}
	endpoint := c.baseURL + "/products/batch?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &statusError{code: resp.StatusCode}
	}

	var products []productResponse
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidPayload, err)
	}
	if products == nil {
		return nil, errInvalidPayload
	}
	return products, nil
}

var errCatalogUnavailable = apperrors.NewCoded(
	apperrors.ErrUnavailable,
	CodeCatalogUnavailable,
	"product catalog temporarily unavailable",
)

func (c *HTTPClient) mapError(err error) error {
	var statusErr *statusError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return errCatalogUnavailable
	case errors.As(err, &statusErr) && statusErr.code == http.StatusNotFound:
		return apperrors.NewCoded(apperrors.ErrNotFound, CodeProductNotFound, "product not found in catalog")
	case errors.As(err, &statusErr) && statusErr.code < 500:
		return apperrors.NewCoded(apperrors.ErrConflict, CodeCatalogRejected, "failed to fetch products from catalog")
	case errors.Is(err, errInvalidPayload):
		return apperrors.NewCoded(apperrors.ErrConflict, CodeInvalidCatalogReply, errInvalidPayload.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		c.logger.Warn("catalog request failed", slog.Any("error", err))
		return errCatalogUnavailable
	}
}

// isTransient reports whether a fetch error is worth retrying: network failures and 5xx responses.
func isTransient(err error) bool {
	var statusErr *statusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.code >= 500
	case errors.Is(err, errInvalidPayload):
		return false
	case errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}

// isBreakerSuccess keeps client errors and caller cancellation from opening the breaker.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *statusError
	return errors.As(err, &statusErr) && statusErr.code < 500
}
