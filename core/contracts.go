package core

import (
	"context"

	glog "github.com/goliatone/go-logger/glog"
)

// API describes a provider's OAuth 2.0 endpoints.
type API interface {
	AccessTokenVerb() string
	AccessTokenEndpoint() string
	AuthorizationURL(cfg Config) string
	AccessTokenExtractor() Extractor
}

// Transport executes a prepared Request. Timeouts and cancellation are the
// transport's concern and arrive through ctx.
type Transport interface {
	Send(ctx context.Context, req *Request) (Response, error)
}

type TransportFunc func(ctx context.Context, req *Request) (Response, error)

func (f TransportFunc) Send(ctx context.Context, req *Request) (Response, error) {
	return f(ctx, req)
}

// Extractor parses a token endpoint response body.
type Extractor interface {
	Extract(body string) (Token, error)
}

type ExtractorFunc func(body string) (Token, error)

func (f ExtractorFunc) Extract(body string) (Token, error) {
	return f(body)
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
