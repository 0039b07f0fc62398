package core

import (
	"encoding/base64"
	"net/http"
	"testing"
)

func TestBasicCredentials_EncodesKeyColonSecret(t *testing.T) {
	if got := BasicCredentials("k", "s"); got != "azpz" {
		t.Fatalf("expected base64(k:s)=azpz, got %q", got)
	}
	want := base64.StdEncoding.EncodeToString([]byte("clé:sécret"))
	if got := BasicCredentials("clé", "sécret"); got != want {
		t.Fatalf("expected utf-8 encoding %q, got %q", want, got)
	}
	if got := BasicCredentials("a b", "c&d"); got != base64.StdEncoding.EncodeToString([]byte("a b:c&d")) {
		t.Fatalf("expected credentials without form encoding, got %q", got)
	}
}

func TestBasicAuthentication_SetsHeaderOnly(t *testing.T) {
	req := NewRequest(http.MethodPost, "https://p.example/token")
	BasicAuthentication{}.Apply(req, testConfig())

	if got := req.Header(HeaderAuthorization); got != "Basic azpz" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	if len(req.QueryParameters()) != 0 {
		t.Fatalf("expected no query parameters, got %#v", req.QueryParameters())
	}
}

func TestRequestParameterAuthentication_AddsClientParams(t *testing.T) {
	req := NewRequest(http.MethodPost, "https://p.example/token")
	RequestParameterAuthentication{}.Apply(req, testConfig())

	if req.Header(HeaderAuthorization) != "" {
		t.Fatalf("expected no authorization header")
	}
	params := req.QueryParameters()
	if len(params) != 2 {
		t.Fatalf("expected two parameters, got %#v", params)
	}
	if params[0] != (QueryParam{Key: ParamClientID, Value: "k"}) {
		t.Fatalf("unexpected first parameter %#v", params[0])
	}
	if params[1] != (QueryParam{Key: ParamClientSecret, Value: "s"}) {
		t.Fatalf("unexpected second parameter %#v", params[1])
	}
}

func TestClientAuthenticationFor(t *testing.T) {
	auth, err := ClientAuthenticationFor(ClientAuthBasic)
	if err != nil {
		t.Fatalf("resolve basic: %v", err)
	}
	if _, ok := auth.(BasicAuthentication); !ok {
		t.Fatalf("expected basic authentication, got %T", auth)
	}
	auth, err = ClientAuthenticationFor("REQUEST_PARAMETER")
	if err != nil {
		t.Fatalf("resolve request parameter: %v", err)
	}
	if _, ok := auth.(RequestParameterAuthentication); !ok {
		t.Fatalf("expected request parameter authentication, got %T", auth)
	}
	if _, err := ClientAuthenticationFor("digest"); !IsInvalidConfiguration(err) {
		t.Fatalf("expected invalid configuration error, got %v", err)
	}
}
