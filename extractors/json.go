package extractors

import (
	"encoding/json"
	"strings"

	"github.com/goliatone/go-oauth/core"
)

type JSONExtractor struct{}

func (JSONExtractor) Extract(body string) (core.Token, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return core.Token{}, extractionError("extractors: response body is empty", nil)
	}
	decoder := json.NewDecoder(strings.NewReader(trimmed))
	decoder.UseNumber()
	var decoded map[string]any
	if err := decoder.Decode(&decoded); err != nil {
		return core.Token{}, extractionWrapError(err, "extractors: decode json token response")
	}
	payload := tokenPayload{
		AccessToken:      readAnyString(decoded["access_token"]),
		TokenType:        readAnyString(decoded["token_type"]),
		RefreshToken:     readAnyString(decoded["refresh_token"]),
		Scope:            readAnyString(decoded["scope"]),
		ExpiresIn:        readAnyInt64(decoded["expires_in"]),
		ErrorCode:        readAnyString(decoded["error"]),
		ErrorDescription: readAnyString(decoded["error_description"]),
	}
	return payload.token(body)
}

var _ core.Extractor = JSONExtractor{}
