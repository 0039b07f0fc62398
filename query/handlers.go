package query

import (
	"context"

	"github.com/goliatone/go-oauth/core"
)

type AuthorizationReader interface {
	GetAuthorizationURL(requestToken *core.Token) string
	Version() string
}

type AuthorizationURLQuery struct {
	reader AuthorizationReader
}

func NewAuthorizationURLQuery(reader AuthorizationReader) *AuthorizationURLQuery {
	return &AuthorizationURLQuery{reader: reader}
}

func (q *AuthorizationURLQuery) Query(_ context.Context, msg AuthorizationURLMessage) (string, error) {
	if q == nil || q.reader == nil {
		return "", queryDependencyError("query: authorization reader is required")
	}
	return q.reader.GetAuthorizationURL(msg.RequestToken), nil
}

type VersionQuery struct {
	reader AuthorizationReader
}

func NewVersionQuery(reader AuthorizationReader) *VersionQuery {
	return &VersionQuery{reader: reader}
}

func (q *VersionQuery) Query(context.Context, VersionMessage) (string, error) {
	if q == nil || q.reader == nil {
		return "", queryDependencyError("query: authorization reader is required")
	}
	return q.reader.Version(), nil
}
