package fetcher

import (
	"context"
	"fmt"
	"time"

	"header-shim-go/internal/config"
	"header-shim-go/shim"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// FetcherInterface defines the paced GET capability offered to callers.
type FetcherInterface interface {
	Fetch(ctx context.Context, url string) (*resty.Response, error)
}

// Fetcher issues GET requests through resty with the identity header
// installed at the transport level, paced by a client-side rate limiter.
// It implements the FetcherInterface.
type Fetcher struct {
	client  *resty.Client
	logger  *zap.Logger
	limiter *rate.Limiter
}

// ensure Fetcher implements the interface
var _ FetcherInterface = (*Fetcher)(nil)

// NewFetcher creates a paced fetcher. Every request it sends carries the
// identity header from cfg unless the endpoint call sets its own.
func NewFetcher(cfg *config.Client, logger *zap.Logger) *Fetcher {
	name := cfg.HeaderName
	if name == "" {
		name = shim.HeaderUserAgent
	}
	value := cfg.UserAgent
	if value == "" {
		value = shim.DefaultUserAgent
	}

	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetTransport(&shim.Transport{
			Name:     name,
			Value:    value,
			Override: cfg.Override,
		})

	// resty stamps its own User-Agent on every request before the
	// transport runs, which the shim's caller-precedence logic would
	// mistake for caller intent. Setting the identity at the client level
	// keeps the configured value on the wire; request-level headers still
	// win over it.
	client.SetHeader(name, value)

	// Initialize the rate limiter
	// rate.Limit is requests per second.
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)

	return &Fetcher{
		client:  client,
		logger:  logger,
		limiter: limiter,
	}
}

// Fetch performs a single GET request to url. Transport failures and HTTP
// error statuses are handed back to the caller untouched; there is no
// retry layer here.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*resty.Response, error) {
	// Wait for the rate limiter
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	f.logger.Debug("Executing request", zap.String("method", "GET"), zap.String("url", url))
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}

	return resp, nil
}
