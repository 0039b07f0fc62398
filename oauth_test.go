package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-oauth/providers/github"
)

func TestNewService_ExchangesCodeOverHTTP(t *testing.T) {
	var gotAuth, gotCode, gotRedirect string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCode = r.URL.Query().Get("code")
		gotRedirect = r.URL.Query().Get("redirect_uri")
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte("access_token=gho_123&scope=repo&token_type=bearer"))
	}))
	defer server.Close()

	api, err := github.New(github.Config{
		AuthURL:  server.URL + "/login/oauth/authorize",
		TokenURL: server.URL + "/login/oauth/access_token",
	})
	if err != nil {
		t.Fatalf("github api: %v", err)
	}
	svc, err := NewService(api, Config{
		APIKey:        "k",
		APISecret:     "s",
		Callback:      "https://client.example/cb",
		AuthScheme:    ClientAuthBasic,
		SignatureType: SignatureBearerHeader,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	token, err := svc.GetAccessToken(context.Background(), nil, NewVerifier("abc123"))
	if err != nil {
		t.Fatalf("get access token: %v", err)
	}
	if token.Token != "gho_123" || token.Scope != "repo" {
		t.Fatalf("unexpected token %#v", token)
	}
	if gotAuth != "Basic azpz" || gotCode != "abc123" || gotRedirect != "https://client.example/cb" {
		t.Fatalf("unexpected token request: auth=%q code=%q redirect=%q", gotAuth, gotCode, gotRedirect)
	}

	req := NewRequest(http.MethodGet, server.URL+"/user")
	if err := svc.SignRequest(context.Background(), token, req); err != nil {
		t.Fatalf("sign request: %v", err)
	}
	if req.Header("Authorization") != "Bearer gho_123" {
		t.Fatalf("unexpected signed header %q", req.Header("Authorization"))
	}
}

func TestNewService_RejectsInvalidConfig(t *testing.T) {
	api, err := github.New(github.Config{})
	if err != nil {
		t.Fatalf("github api: %v", err)
	}
	if _, err := NewService(api, Config{APISecret: "s"}); !IsInvalidConfiguration(err) {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}

func TestDefaultConfig_UsesRequestParametersAndQueryString(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AuthScheme != ClientAuthRequestParameter || cfg.SignatureType != SignatureQueryString {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
}
