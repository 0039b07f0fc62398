package extractors

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-oauth/core"
)

// FormExtractor reads bodies shaped like
// "access_token=...&expires_in=3600&token_type=bearer".
type FormExtractor struct{}

func (FormExtractor) Extract(body string) (core.Token, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return core.Token{}, extractionError("extractors: response body is empty", nil)
	}
	values, err := url.ParseQuery(trimmed)
	if err != nil {
		return core.Token{}, extractionWrapError(err, "extractors: decode form token response")
	}
	payload := tokenPayload{
		AccessToken:      strings.TrimSpace(values.Get("access_token")),
		TokenType:        strings.TrimSpace(values.Get("token_type")),
		RefreshToken:     strings.TrimSpace(values.Get("refresh_token")),
		Scope:            strings.TrimSpace(values.Get("scope")),
		ExpiresIn:        readAnyInt64(values.Get("expires_in")),
		ErrorCode:        strings.TrimSpace(values.Get("error")),
		ErrorDescription: strings.TrimSpace(values.Get("error_description")),
	}
	return payload.token(body)
}

var _ core.Extractor = FormExtractor{}
