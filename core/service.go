package core

import (
	"context"
	"net/http"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"
)

// Service runs the OAuth 2.0 authorization code flow for one client
// configuration. It holds no per-session state and is safe for concurrent use.
type Service struct {
	api             API
	config          Config
	authentication  ClientAuthentication
	signature       SignatureStrategy
	transport       Transport
	extractor       Extractor
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorMapper     ErrorMapper
	configProvider  ConfigProvider
	optionsResolver OptionsResolver
}

type ServiceDependencies struct {
	Logger          Logger
	LoggerProvider  LoggerProvider
	MetricsRecorder MetricsRecorder
	ErrorMapper     ErrorMapper
	ConfigProvider  ConfigProvider
	OptionsResolver OptionsResolver
	Transport       Transport
	Extractor       Extractor
}

func NewService(api API, cfg Config, opts ...Option) (*Service, error) {
	builder := defaultServiceBuilder(cfg)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	explicitLogger := builder.logger != nil
	provider, logger := glog.Resolve(loggerName, builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if explicitLogger {
		logger = glog.Ensure(builder.logger)
	} else if provider != nil {
		if named := provider.GetLogger(loggerName); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = configErrorMapper
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}

	if api == nil {
		return nil, invalidConfigurationError("core: oauth api descriptor is required", nil)
	}
	if builder.transport == nil {
		return nil, invalidConfigurationError("core: transport is required", nil)
	}
	extractor := builder.extractor
	if extractor == nil {
		extractor = api.AccessTokenExtractor()
	}
	if extractor == nil {
		return nil, invalidConfigurationError("core: access token extractor is required", nil)
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	if err := finalConfig.Validate(); err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	authentication, err := ClientAuthenticationFor(finalConfig.AuthScheme)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	signature := SignatureStrategyFor(finalConfig.SignatureType)
	finalConfig.AuthScheme = authentication.Scheme()
	finalConfig.SignatureType = signature.Type()

	if _, unsupported := signature.(UnsupportedSignature); unsupported {
		logger.Warn("signature type cannot sign oauth 2.0 requests", "signature_type", string(signature.Type()))
	}

	return &Service{
		api:             api,
		config:          finalConfig,
		authentication:  authentication,
		signature:       signature,
		transport:       builder.transport,
		extractor:       extractor,
		logger:          logger,
		loggerProvider:  provider,
		metricsRecorder: builder.metricsRecorder,
		errorMapper:     builder.errorMapper,
		configProvider:  builder.configProvider,
		optionsResolver: builder.optionsResolver,
	}, nil
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	if mapped := mapper(err); mapped != nil {
		return mapped
	}
	return err
}

func (s *Service) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.config
}

func (s *Service) Dependencies() ServiceDependencies {
	if s == nil {
		return ServiceDependencies{}
	}
	return ServiceDependencies{
		Logger:          s.logger,
		LoggerProvider:  s.loggerProvider,
		MetricsRecorder: s.metricsRecorder,
		ErrorMapper:     s.errorMapper,
		ConfigProvider:  s.configProvider,
		OptionsResolver: s.optionsResolver,
		Transport:       s.transport,
		Extractor:       s.extractor,
	}
}

func (s *Service) Version() string {
	return Version
}

// GetRequestToken always fails: OAuth 2.0 has no request token leg.
func (s *Service) GetRequestToken(ctx context.Context) (Token, error) {
	err := unsupportedOperationError(
		"core: unsupported operation, use GetAuthorizationURL and redirect your users there",
	)
	s.observeOperation(ctx, time.Now(), operationEvent{Operation: opGetRequestToken}, err)
	return Token{}, err
}

// GetAuthorizationURL returns the provider's consent URL. requestToken is
// ignored.
func (s *Service) GetAuthorizationURL(_ *Token) string {
	return s.api.AuthorizationURL(s.config)
}

// GetAccessToken exchanges verifier for an access token. requestToken is
// ignored. Transport and extractor errors are returned as received.
func (s *Service) GetAccessToken(ctx context.Context, _ *Token, verifier Verifier) (Token, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	startedAt := time.Now()
	event := operationEvent{
		Operation:  opGetAccessToken,
		ExchangeID: uuid.NewString(),
		Endpoint:   s.api.AccessTokenEndpoint(),
		AuthScheme: s.authentication.Scheme(),
	}

	req := s.buildTokenRequest(verifier)
	s.authentication.Apply(req, s.config)

	res, err := s.transport.Send(ctx, req)
	if err != nil {
		s.observeOperation(ctx, startedAt, event, err)
		return Token{}, err
	}
	event.StatusCode = res.StatusCode

	token, err := s.extractor.Extract(res.Body)
	s.observeOperation(ctx, startedAt, event, err)
	return token, err
}

func (s *Service) buildTokenRequest(verifier Verifier) *Request {
	verb := s.api.AccessTokenVerb()
	if verb == "" {
		verb = http.MethodPost
	}
	req := NewRequest(verb, s.api.AccessTokenEndpoint())
	req.AddQuerystringParameter(ParamCode, verifier.Value)
	req.AddQuerystringParameter(ParamRedirectURI, s.config.Callback)
	if s.config.HasScope() {
		req.AddQuerystringParameter(ParamScope, s.config.Scope)
	}
	return req
}

// SignRequest attaches token to req using the configured signature type. An
// unsupported type fails without touching req.
func (s *Service) SignRequest(ctx context.Context, token Token, req *Request) error {
	if req == nil {
		return goerrors.New("core: request is required for signing", goerrors.CategoryBadInput).
			WithCode(http.StatusBadRequest).
			WithTextCode(ErrorBadInput)
	}
	if err := s.signature.Sign(token, req); err != nil {
		s.observeOperation(ctx, time.Now(), operationEvent{
			Operation:     opSignRequest,
			SignatureType: s.signature.Type(),
		}, err)
		return err
	}
	return nil
}
