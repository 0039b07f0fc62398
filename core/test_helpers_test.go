package core

import (
	"context"
	"sync"
)

type stubAPI struct {
	verb      string
	endpoint  string
	extractor Extractor

	mu         sync.Mutex
	authConfig []Config
}

func newStubAPI(extractor Extractor) *stubAPI {
	return &stubAPI{
		verb:      "POST",
		endpoint:  "https://provider.example/oauth/token",
		extractor: extractor,
	}
}

func (a *stubAPI) AccessTokenVerb() string { return a.verb }

func (a *stubAPI) AccessTokenEndpoint() string { return a.endpoint }

func (a *stubAPI) AccessTokenExtractor() Extractor { return a.extractor }

func (a *stubAPI) AuthorizationURL(cfg Config) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.authConfig = append(a.authConfig, cfg)
	return "https://provider.example/oauth/authorize?client_id=" + cfg.APIKey
}

type recordingTransport struct {
	response Response
	err      error

	mu       sync.Mutex
	requests []*Request
}

func (t *recordingTransport) Send(_ context.Context, req *Request) (Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests = append(t.requests, req)
	return t.response, t.err
}

func (t *recordingTransport) last() *Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return nil
	}
	return t.requests[len(t.requests)-1]
}

type recordingExtractor struct {
	token Token
	err   error

	mu     sync.Mutex
	bodies []string
}

func (e *recordingExtractor) Extract(body string) (Token, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bodies = append(e.bodies, body)
	return e.token, e.err
}

type metricCall struct {
	name string
	tags map[string]string
}

type recordingMetrics struct {
	mu       sync.Mutex
	counters []metricCall
}

func (m *recordingMetrics) IncCounter(_ context.Context, name string, _ int64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = append(m.counters, metricCall{name: name, tags: tags})
}

func (m *recordingMetrics) ObserveHistogram(context.Context, string, float64, map[string]string) {}

type logCall struct {
	level string
	msg   string
	args  []any
}

type stubLogger struct {
	mu    *sync.Mutex
	calls *[]logCall
}

func newStubLogger() stubLogger {
	return stubLogger{mu: &sync.Mutex{}, calls: &[]logCall{}}
}

func (l stubLogger) record(level string, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.calls = append(*l.calls, logCall{level: level, msg: msg, args: append([]any(nil), args...)})
}

func (l stubLogger) entries() []logCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logCall(nil), (*l.calls)...)
}

func (l stubLogger) Trace(msg string, args ...any) { l.record("trace", msg, args) }
func (l stubLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }
func (l stubLogger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l stubLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l stubLogger) Error(msg string, args ...any) { l.record("error", msg, args) }
func (l stubLogger) Fatal(msg string, args ...any) { l.record("fatal", msg, args) }

func (l stubLogger) WithContext(context.Context) Logger { return l }

type stubLoggerProvider struct {
	logger Logger
}

func (p stubLoggerProvider) GetLogger(string) Logger { return p.logger }

type mapRawLoader struct {
	values map[string]any
}

func (l mapRawLoader) LoadRaw(context.Context) (map[string]any, error) {
	return l.values, nil
}

func testConfig() Config {
	return Config{
		APIKey:        "k",
		APISecret:     "s",
		Callback:      "https://client.example/callback",
		AuthScheme:    ClientAuthBasic,
		SignatureType: SignatureBearerHeader,
	}
}

func newTestService(cfg Config, transport Transport, extractor Extractor, opts ...Option) (*Service, error) {
	all := append([]Option{WithTransport(transport)}, opts...)
	return NewService(newStubAPI(extractor), cfg, all...)
}
