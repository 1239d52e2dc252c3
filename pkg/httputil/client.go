package httputil

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptrace"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/httptrace/otelhttptrace"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mightyai/mighty-gateway/internal"
)

const (
	DefaultTimeout      = 30 * time.Second
	MaxIdleConns        = 100
	MaxIdleConnsPerHost = 20
	IdleConnTimeout     = 30 * time.Second
)

// HTTPClient is the minimal client surface the backend clients depend on.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewPooledHTTPClient returns a shared-transport HTTP client with the given
// timeout. It is built on retryablehttp for its pooled transport and leveled
// logging, but with retries disabled: the gateway maps one inbound call to
// exactly one outbound request.
func NewPooledHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := retryablehttp.Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
			Transport: otelhttp.NewTransport(&http.Transport{
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
				MaxIdleConns:          MaxIdleConns,
				MaxIdleConnsPerHost:   MaxIdleConnsPerHost,
				IdleConnTimeout:       IdleConnTimeout,
				ResponseHeaderTimeout: timeout,
				DisableKeepAlives:     false,
			}, otelhttp.WithClientTrace(
				func(ctx context.Context) *httptrace.ClientTrace {
					return otelhttptrace.NewClientTrace(ctx)
				}),
			),
		},
		Logger:     internal.NewLeveledLogrus(internal.GetLogger()),
		RetryMax:   0,
		Backoff:    retryablehttp.DefaultBackoff,
		CheckRetry: NoRetryPolicy,
	}

	return httpClient.HTTPClient
}

// NoRetryPolicy never retries. It only propagates context cancellation so an
// abandoned inbound call abandons the outbound request as well.
func NoRetryPolicy(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	return false, nil
}
