package core

import (
	"net/http"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/oauth2"
)

type ClientAuthScheme string

const (
	ClientAuthBasic            ClientAuthScheme = "basic_authentication"
	ClientAuthRequestParameter ClientAuthScheme = "request_parameter"
)

type SignatureType string

const (
	// SignatureHeader is the OAuth 1.0a style header placement. It is accepted
	// in configuration but cannot sign OAuth 2.0 requests.
	SignatureHeader       SignatureType = "header"
	SignatureQueryString  SignatureType = "query_string"
	SignatureBearerHeader SignatureType = "bearer_authorization_header"
)

// Config holds the client credentials and the two placement policies used by
// Service. A Service keeps its own copy; mutating the caller's value after
// construction has no effect.
type Config struct {
	APIKey        string           `koanf:"api_key" mapstructure:"api_key"`
	APISecret     string           `koanf:"api_secret" mapstructure:"api_secret"`
	Callback      string           `koanf:"callback" mapstructure:"callback"`
	Scope         string           `koanf:"scope" mapstructure:"scope"`
	AuthScheme    ClientAuthScheme `koanf:"auth_scheme" mapstructure:"auth_scheme"`
	SignatureType SignatureType    `koanf:"signature_type" mapstructure:"signature_type"`
}

func DefaultConfig() Config {
	return Config{
		AuthScheme:    ClientAuthRequestParameter,
		SignatureType: SignatureQueryString,
	}
}

func (c Config) HasScope() bool {
	return strings.TrimSpace(c.Scope) != ""
}

func (c Config) HasCallback() bool {
	return strings.TrimSpace(c.Callback) != ""
}

func (c Config) Validate() error {
	var fields []goerrors.FieldError
	if strings.TrimSpace(c.APIKey) == "" {
		fields = append(fields, goerrors.FieldError{Field: "api_key", Message: "api key is required"})
	}
	if strings.TrimSpace(c.APISecret) == "" {
		fields = append(fields, goerrors.FieldError{Field: "api_secret", Message: "api secret is required"})
	}
	if _, ok := ParseClientAuthScheme(string(c.AuthScheme)); !ok {
		fields = append(fields, goerrors.FieldError{
			Field:   "auth_scheme",
			Message: "unsupported client authentication scheme " + strconv.Quote(string(c.AuthScheme)),
		})
	}
	if _, ok := ParseSignatureType(string(c.SignatureType)); !ok {
		fields = append(fields, goerrors.FieldError{
			Field:   "signature_type",
			Message: "unknown signature type " + strconv.Quote(string(c.SignatureType)),
		})
	}
	if len(fields) == 0 {
		return nil
	}
	return goerrors.NewValidation("core: invalid oauth configuration", fields...).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorInvalidConfiguration)
}

// OAuth2Config maps the client settings onto an x/oauth2 config for callers
// that also drive golang.org/x/oauth2 clients against the same provider.
func (c Config) OAuth2Config(endpoint oauth2.Endpoint) *oauth2.Config {
	endpoint.AuthStyle = oauth2.AuthStyleInParams
	if scheme, _ := ParseClientAuthScheme(string(c.AuthScheme)); scheme == ClientAuthBasic {
		endpoint.AuthStyle = oauth2.AuthStyleInHeader
	}
	var scopes []string
	if c.HasScope() {
		scopes = strings.Fields(c.Scope)
	}
	return &oauth2.Config{
		ClientID:     c.APIKey,
		ClientSecret: c.APISecret,
		Endpoint:     endpoint,
		RedirectURL:  c.Callback,
		Scopes:       scopes,
	}
}

func ParseClientAuthScheme(value string) (ClientAuthScheme, bool) {
	switch ClientAuthScheme(normalizeEnum(value)) {
	case ClientAuthBasic:
		return ClientAuthBasic, true
	case ClientAuthRequestParameter:
		return ClientAuthRequestParameter, true
	default:
		return "", false
	}
}

func ParseSignatureType(value string) (SignatureType, bool) {
	switch SignatureType(normalizeEnum(value)) {
	case SignatureHeader:
		return SignatureHeader, true
	case SignatureQueryString:
		return SignatureQueryString, true
	case SignatureBearerHeader:
		return SignatureBearerHeader, true
	default:
		return "", false
	}
}

func normalizeEnum(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	return strings.ReplaceAll(value, "-", "_")
}
