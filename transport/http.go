package transport

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-oauth/core"
)

const defaultClientTimeout = 30 * time.Second
const defaultResponseBodyLimit int64 = 10 << 20 // 10 MiB
const defaultAcceptHeader = "application/json, application/x-www-form-urlencoded;q=0.9, */*;q=0.8"

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPTransport sends core requests over net/http. Non-2xx responses are
// returned with their body so the extractor can surface provider errors.
type HTTPTransport struct {
	Client               HTTPDoer
	DefaultHeaders       map[string]string
	MaxResponseBodyBytes int64
	Timeout              time.Duration
}

func NewHTTPTransport(client HTTPDoer) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}
	return &HTTPTransport{
		Client: client,
		DefaultHeaders: map[string]string{
			"Accept": defaultAcceptHeader,
		},
		MaxResponseBodyBytes: defaultResponseBodyLimit,
	}
}

func (t *HTTPTransport) Send(ctx context.Context, req *core.Request) (core.Response, error) {
	if t == nil || t.Client == nil {
		return core.Response{}, errMissingClient.with(nil, nil)
	}
	if req == nil {
		return core.Response{}, errMissingRequest.with(nil, nil)
	}
	if strings.TrimSpace(req.Endpoint) == "" {
		return core.Response{}, errMissingEndpoint.with(nil, map[string]any{"method": req.Verb})
	}
	if ctx == nil {
		ctx = context.Background()
	}

	requestCtx := ctx
	cancel := func() {}
	if t.Timeout > 0 {
		requestCtx, cancel = context.WithTimeout(ctx, t.Timeout)
	}
	defer cancel()

	httpReq, err := req.HTTPRequest(requestCtx)
	if err != nil {
		return core.Response{}, errBuildRequest.with(err, requestMetadata(req))
	}
	for key, value := range t.DefaultHeaders {
		if strings.TrimSpace(key) == "" || httpReq.Header.Get(key) != "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	httpRes, err := t.Client.Do(httpReq)
	if err != nil {
		return core.Response{}, errExecute.with(err, requestMetadata(req))
	}
	defer httpRes.Body.Close()

	maxBodyBytes := t.MaxResponseBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultResponseBodyLimit
	}
	body, err := io.ReadAll(io.LimitReader(httpRes.Body, maxBodyBytes+1))
	if err != nil {
		return core.Response{}, errReadBody.with(err, map[string]any{"status_code": httpRes.StatusCode})
	}
	if int64(len(body)) > maxBodyBytes {
		return core.Response{}, errBodyTooLarge.with(nil, map[string]any{
			"status_code":          httpRes.StatusCode,
			"response_limit_bytes": maxBodyBytes,
		})
	}

	return core.Response{
		StatusCode: httpRes.StatusCode,
		Headers:    flattenHeaders(httpRes.Header),
		Body:       string(body),
	}, nil
}

func flattenHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return map[string]string{}
	}
	flat := make(map[string]string, len(headers))
	for key, values := range headers {
		flat[key] = strings.Join(values, ",")
	}
	return flat
}

var _ core.Transport = (*HTTPTransport)(nil)
