package core

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type QueryParam struct {
	Key   string
	Value string
}

// Request describes an outbound call before it is handed to a Transport.
// Query parameters keep their insertion order so the encoded URL is stable.
// A Request is not safe for concurrent mutation; it belongs to whoever is
// building it until it is sent.
type Request struct {
	Verb     string
	Endpoint string

	query   []QueryParam
	headers map[string]string
}

func NewRequest(verb string, endpoint string) *Request {
	verb = strings.ToUpper(strings.TrimSpace(verb))
	if verb == "" {
		verb = http.MethodGet
	}
	return &Request{
		Verb:     verb,
		Endpoint: strings.TrimSpace(endpoint),
		headers:  map[string]string{},
	}
}

func (r *Request) AddQuerystringParameter(key string, value string) {
	r.query = append(r.query, QueryParam{Key: key, Value: value})
}

// AddHeader sets a header, replacing any previous value for the same
// canonical name.
func (r *Request) AddHeader(key string, value string) {
	if r.headers == nil {
		r.headers = map[string]string{}
	}
	r.headers[http.CanonicalHeaderKey(key)] = value
}

func (r *Request) Header(key string) string {
	return r.headers[http.CanonicalHeaderKey(key)]
}

func (r *Request) Headers() map[string]string {
	out := make(map[string]string, len(r.headers))
	for key, value := range r.headers {
		out[key] = value
	}
	return out
}

func (r *Request) QueryParameters() []QueryParam {
	return append([]QueryParam(nil), r.query...)
}

// QueryParameter returns the first value added for key.
func (r *Request) QueryParameter(key string) (string, bool) {
	for _, param := range r.query {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

func (r *Request) QueryString() string {
	if len(r.query) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.query))
	for _, param := range r.query {
		parts = append(parts, url.QueryEscape(param.Key)+"="+url.QueryEscape(param.Value))
	}
	return strings.Join(parts, "&")
}

// CompleteURL appends the encoded query parameters to the endpoint, keeping
// any query the endpoint already carries.
func (r *Request) CompleteURL() string {
	query := r.QueryString()
	if query == "" {
		return r.Endpoint
	}
	if strings.Contains(r.Endpoint, "?") {
		return r.Endpoint + "&" + query
	}
	return r.Endpoint + "?" + query
}

func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	httpReq, err := http.NewRequestWithContext(ctx, r.Verb, r.CompleteURL(), nil)
	if err != nil {
		return nil, err
	}
	for key, value := range r.headers {
		httpReq.Header.Set(key, value)
	}
	return httpReq, nil
}

type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}
