package google

import (
	"github.com/goliatone/go-oauth/extractors"
	"github.com/goliatone/go-oauth/providers"
	googleendpoint "golang.org/x/oauth2/google"
)

const ProviderID = "google"

type Config struct {
	AuthURL  string
	TokenURL string
	// AccessType "offline" asks Google for a refresh token.
	AccessType string
}

func DefaultConfig() Config {
	return Config{
		AuthURL:  googleendpoint.Endpoint.AuthURL,
		TokenURL: googleendpoint.Endpoint.TokenURL,
	}
}

func New(cfg Config) (*providers.OAuth2API, error) {
	defaults := DefaultConfig()
	if cfg.AuthURL == "" {
		cfg.AuthURL = defaults.AuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaults.TokenURL
	}
	params := map[string]string{}
	if cfg.AccessType != "" {
		params["access_type"] = cfg.AccessType
	}
	return providers.NewOAuth2API(providers.OAuth2APIConfig{
		ID:         ProviderID,
		AuthURL:    cfg.AuthURL,
		TokenURL:   cfg.TokenURL,
		Extractor:  extractors.JSONExtractor{},
		AuthParams: params,
	})
}
