package query

import "github.com/goliatone/go-oauth/core"

const (
	TypeAuthorizationURL = "oauth.query.authorization_url"
	TypeVersion          = "oauth.query.version"
)

type AuthorizationURLMessage struct {
	RequestToken *core.Token
}

func (AuthorizationURLMessage) Type() string { return TypeAuthorizationURL }

type VersionMessage struct{}

func (VersionMessage) Type() string { return TypeVersion }
