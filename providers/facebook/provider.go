package facebook

import (
	"net/http"

	"github.com/goliatone/go-oauth/extractors"
	"github.com/goliatone/go-oauth/providers"
	fbendpoint "golang.org/x/oauth2/facebook"
)

const ProviderID = "facebook"

type Config struct {
	AuthURL  string
	TokenURL string
}

func DefaultConfig() Config {
	return Config{
		AuthURL:  fbendpoint.Endpoint.AuthURL,
		TokenURL: fbendpoint.Endpoint.TokenURL,
	}
}

// New returns the Facebook descriptor. The Graph API token endpoint is
// called with GET.
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
		TokenVerb: http.MethodGet,
		Extractor: extractors.JSONExtractor{},
	})
}
