package query

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Querier[AuthorizationURLMessage, string] = (*AuthorizationURLQuery)(nil)
	_ gocmd.Querier[VersionMessage, string]          = (*VersionQuery)(nil)
)
