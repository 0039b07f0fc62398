package extractors

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-oauth/core"
)

type tokenPayload struct {
	AccessToken      string
	TokenType        string
	RefreshToken     string
	Scope            string
	ExpiresIn        int64
	ErrorCode        string
	ErrorDescription string
}

func (p tokenPayload) token(raw string) (core.Token, error) {
	if p.ErrorCode != "" {
		return core.Token{}, extractionError(
			"extractors: token endpoint error: "+describeTokenError(p),
			map[string]any{"error": p.ErrorCode},
		)
	}
	if p.AccessToken == "" {
		return core.Token{}, extractionError("extractors: response does not contain an access token", nil)
	}
	return core.Token{
		Token:        p.AccessToken,
		RawResponse:  raw,
		TokenType:    p.TokenType,
		RefreshToken: p.RefreshToken,
		Scope:        p.Scope,
		ExpiresIn:    p.ExpiresIn,
	}, nil
}

func describeTokenError(payload tokenPayload) string {
	if payload.ErrorDescription != "" {
		return payload.ErrorDescription
	}
	if payload.ErrorCode != "" {
		return payload.ErrorCode
	}
	return "unknown error"
}

func readAnyString(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(typed)
	case json.Number:
		return strings.TrimSpace(typed.String())
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

func readAnyInt64(value any) int64 {
	switch typed := value.(type) {
	case json.Number:
		parsed, err := typed.Int64()
		if err == nil {
			return parsed
		}
		floatParsed, floatErr := typed.Float64()
		if floatErr == nil {
			return int64(floatParsed)
		}
	case float64:
		return int64(typed)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err == nil {
			return parsed
		}
	}
	return 0
}
