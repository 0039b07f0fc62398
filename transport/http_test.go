package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-oauth/core"
)

func TestHTTPTransport_SendsQueryAndHeaders(t *testing.T) {
	var gotMethod, gotQuery, gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"t"}`))
	}))
	defer server.Close()

	req := core.NewRequest(http.MethodPost, server.URL+"/token")
	req.AddQuerystringParameter("code", "abc123")
	req.AddQuerystringParameter("redirect_uri", "https://client.example/cb")
	req.AddHeader("Authorization", "Basic azpz")

	res, err := NewHTTPTransport(server.Client()).Send(context.Background(), req)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("unexpected method %q", gotMethod)
	}
	if gotQuery != "code=abc123&redirect_uri=https%3A%2F%2Fclient.example%2Fcb" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
	if gotAuth != "Basic azpz" {
		t.Fatalf("unexpected authorization header %q", gotAuth)
	}
	if gotAccept != defaultAcceptHeader {
		t.Fatalf("expected default accept header, got %q", gotAccept)
	}
	if res.StatusCode != http.StatusOK || res.Body != `{"access_token":"t"}` {
		t.Fatalf("unexpected response %#v", res)
	}
	if res.Headers["Content-Type"] != "application/json" {
		t.Fatalf("expected response headers, got %#v", res.Headers)
	}
}

func TestHTTPTransport_KeepsCallerAcceptHeader(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
	}))
	defer server.Close()

	req := core.NewRequest(http.MethodGet, server.URL)
	req.AddHeader("Accept", "text/plain")
	if _, err := NewHTTPTransport(server.Client()).Send(context.Background(), req); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotAccept != "text/plain" {
		t.Fatalf("expected caller accept header, got %q", gotAccept)
	}
}

func TestHTTPTransport_ReturnsNonSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	res, err := NewHTTPTransport(server.Client()).Send(context.Background(), core.NewRequest(http.MethodPost, server.URL))
	if err != nil {
		t.Fatalf("expected provider errors to be returned as responses: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest || !strings.Contains(res.Body, "invalid_grant") {
		t.Fatalf("unexpected response %#v", res)
	}
}

func TestHTTPTransport_EnforcesBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.Client())
	transport.MaxResponseBodyBytes = 16
	_, err := transport.Send(context.Background(), core.NewRequest(http.MethodGet, server.URL))
	if !core.HasTextCode(err, core.ErrorTransportFailure) {
		t.Fatalf("expected transport failure, got %v", err)
	}
}

func TestHTTPTransport_RejectsInvalidRequests(t *testing.T) {
	transport := NewHTTPTransport(nil)
	if _, err := transport.Send(context.Background(), nil); !core.HasTextCode(err, core.ErrorBadInput) {
		t.Fatalf("expected bad input for nil request, got %v", err)
	}
	if _, err := transport.Send(context.Background(), core.NewRequest(http.MethodGet, " ")); !core.HasTextCode(err, core.ErrorBadInput) {
		t.Fatalf("expected bad input for empty endpoint, got %v", err)
	}
	var empty *HTTPTransport
	if _, err := empty.Send(context.Background(), core.NewRequest(http.MethodGet, "https://p.example")); !core.HasTextCode(err, core.ErrorInternal) {
		t.Fatalf("expected internal error for nil transport, got %v", err)
	}
}

type failingDoer struct {
	err error
}

func (d failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, d.err
}

func TestHTTPTransport_WrapsClientErrors(t *testing.T) {
	sentinel := errors.New("dial tcp: connection refused")
	_, err := NewHTTPTransport(failingDoer{err: sentinel}).Send(
		context.Background(),
		core.NewRequest(http.MethodPost, "https://provider.example/token"),
	)
	if !core.HasTextCode(err, core.ErrorTransportFailure) {
		t.Fatalf("expected transport failure, got %v", err)
	}
}
