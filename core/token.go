package core

import (
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Token is the credential produced by an Extractor. RawResponse keeps the
// token endpoint body it was parsed from.
type Token struct {
	Token        string
	Secret       string
	RawResponse  string
	TokenType    string
	RefreshToken string
	Scope        string
	ExpiresIn    int64
}

func (t Token) IsEmpty() bool {
	return strings.TrimSpace(t.Token) == ""
}

// OAuth2 converts the token for use with golang.org/x/oauth2 clients. issuedAt
// anchors ExpiresIn; a zero value leaves the expiry unset.
func (t Token) OAuth2(issuedAt time.Time) *oauth2.Token {
	out := &oauth2.Token{
		AccessToken:  t.Token,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		ExpiresIn:    t.ExpiresIn,
	}
	if t.ExpiresIn > 0 && !issuedAt.IsZero() {
		out.Expiry = issuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
	}
	if t.Scope != "" {
		out = out.WithExtra(map[string]any{ParamScope: t.Scope})
	}
	return out
}

func TokenFromOAuth2(token *oauth2.Token) Token {
	if token == nil {
		return Token{}
	}
	out := Token{
		Token:        token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    token.ExpiresIn,
	}
	if scope, ok := token.Extra(ParamScope).(string); ok {
		out.Scope = scope
	}
	return out
}

// Verifier is the authorization code returned to the callback after consent.
type Verifier struct {
	Value string
}

func NewVerifier(value string) Verifier {
	return Verifier{Value: value}
}
