// Package oauth is the entry point for the OAuth 2.0 client core. It re-exports
// the core types and wires the default HTTP transport.
package oauth

import (
	"github.com/goliatone/go-oauth/core"
	"github.com/goliatone/go-oauth/transport"
)

type Config = core.Config

type Option = core.Option

type Service = core.Service

type ServiceDependencies = core.ServiceDependencies

type API = core.API
type Transport = core.Transport
type Extractor = core.Extractor
type Request = core.Request
type Response = core.Response
type Token = core.Token
type Verifier = core.Verifier

type ClientAuthScheme = core.ClientAuthScheme
type SignatureType = core.SignatureType

const (
	ClientAuthBasic            = core.ClientAuthBasic
	ClientAuthRequestParameter = core.ClientAuthRequestParameter

	SignatureHeader       = core.SignatureHeader
	SignatureQueryString  = core.SignatureQueryString
	SignatureBearerHeader = core.SignatureBearerHeader
)

var (
	WithLogger          = core.WithLogger
	WithLoggerProvider  = core.WithLoggerProvider
	WithMetricsRecorder = core.WithMetricsRecorder
	WithErrorMapper     = core.WithErrorMapper
	WithConfigProvider  = core.WithConfigProvider
	WithOptionsResolver = core.WithOptionsResolver
	WithTransport       = core.WithTransport
	WithExtractor       = core.WithExtractor

	NewCfgxConfigProvider = core.NewCfgxConfigProvider
	NewStaticConfigLoader = core.NewStaticConfigLoader
	NewEnvConfigLoader    = core.NewEnvConfigLoader

	NewRequest             = core.NewRequest
	NewVerifier            = core.NewVerifier
	IsInvalidConfiguration = core.IsInvalidConfiguration
	IsUnsupportedOperation = core.IsUnsupportedOperation
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// NewService builds a Service for api. Requests go through an HTTPTransport
// on a default http.Client unless WithTransport is given.
func NewService(api API, cfg Config, opts ...Option) (*Service, error) {
	withDefaults := make([]Option, 0, len(opts)+1)
	withDefaults = append(withDefaults, core.WithTransport(transport.NewHTTPTransport(nil)))
	withDefaults = append(withDefaults, opts...)
	return core.NewService(api, cfg, withDefaults...)
}
