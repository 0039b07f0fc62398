package providers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-oauth/core"
	"github.com/goliatone/go-oauth/extractors"
	"golang.org/x/oauth2"
)

type OAuth2APIConfig struct {
	ID        string
	AuthURL   string
	TokenURL  string
	TokenVerb string
	Extractor core.Extractor
	// AuthParams are appended to every authorization URL.
	AuthParams map[string]string
}

// EndpointConfig seeds an OAuth2APIConfig from an x/oauth2 endpoint.
func EndpointConfig(id string, endpoint oauth2.Endpoint) OAuth2APIConfig {
	return OAuth2APIConfig{
		ID:       id,
		AuthURL:  endpoint.AuthURL,
		TokenURL: endpoint.TokenURL,
	}
}

type OAuth2API struct {
	cfg OAuth2APIConfig
}

func NewOAuth2API(cfg OAuth2APIConfig) (*OAuth2API, error) {
	cfg.ID = strings.TrimSpace(strings.ToLower(cfg.ID))
	cfg.AuthURL = strings.TrimSpace(cfg.AuthURL)
	cfg.TokenURL = strings.TrimSpace(cfg.TokenURL)
	if cfg.AuthURL == "" {
		return nil, fmt.Errorf("providers: auth url is required for provider %q", cfg.ID)
	}
	if cfg.TokenURL == "" {
		return nil, fmt.Errorf("providers: token url is required for provider %q", cfg.ID)
	}
	cfg.TokenVerb = strings.ToUpper(strings.TrimSpace(cfg.TokenVerb))
	if cfg.TokenVerb == "" {
		cfg.TokenVerb = http.MethodPost
	}
	if cfg.TokenVerb != http.MethodPost && cfg.TokenVerb != http.MethodGet {
		return nil, fmt.Errorf("providers: token verb %q is not supported for provider %q", cfg.TokenVerb, cfg.ID)
	}
	if cfg.Extractor == nil {
		cfg.Extractor = extractors.AutoExtractor{}
	}
	cfg.AuthParams = cloneParams(cfg.AuthParams)
	return &OAuth2API{cfg: cfg}, nil
}

func (a *OAuth2API) ID() string {
	if a == nil {
		return ""
	}
	return a.cfg.ID
}

func (a *OAuth2API) AccessTokenVerb() string {
	return a.cfg.TokenVerb
}

func (a *OAuth2API) AccessTokenEndpoint() string {
	return a.cfg.TokenURL
}

func (a *OAuth2API) AccessTokenExtractor() core.Extractor {
	return a.cfg.Extractor
}

// AuthorizationURL builds the consent redirect for the code grant.
func (a *OAuth2API) AuthorizationURL(cfg core.Config) string {
	values := url.Values{}
	for key, value := range a.cfg.AuthParams {
		values.Set(key, value)
	}
	values.Set(core.ParamResponseType, "code")
	values.Set(core.ParamClientID, cfg.APIKey)
	if cfg.HasCallback() {
		values.Set(core.ParamRedirectURI, cfg.Callback)
	}
	if cfg.HasScope() {
		values.Set(core.ParamScope, cfg.Scope)
	}

	authURL := a.cfg.AuthURL
	if strings.Contains(authURL, "?") {
		return authURL + "&" + values.Encode()
	}
	return authURL + "?" + values.Encode()
}

func cloneParams(input map[string]string) map[string]string {
	output := make(map[string]string, len(input))
	for key, value := range input {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		output[key] = value
	}
	return output
}

var _ core.API = (*OAuth2API)(nil)
