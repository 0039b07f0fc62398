package github

import (
	"github.com/goliatone/go-oauth/extractors"
	"github.com/goliatone/go-oauth/providers"
	ghendpoint "golang.org/x/oauth2/github"
)

const ProviderID = "github"

type Config struct {
	AuthURL  string
	TokenURL string
}

func DefaultConfig() Config {
	return Config{
		AuthURL:  ghendpoint.Endpoint.AuthURL,
		TokenURL: ghendpoint.Endpoint.TokenURL,
	}
}

// New returns the GitHub descriptor. GitHub answers with a form-encoded body
// unless JSON is requested, so the extractor accepts both.
func New(cfg Config) (*providers.OAuth2API, error) {
	defaults := DefaultConfig()
	if cfg.AuthURL == "" {
		cfg.AuthURL = defaults.AuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaults.TokenURL
	}
	return providers.NewOAuth2API(providers.OAuth2APIConfig{
		ID:        ProviderID,
		AuthURL:   cfg.AuthURL,
		TokenURL:  cfg.TokenURL,
		Extractor: extractors.AutoExtractor{},
	})
}
