package oauth

import (
	"fmt"

	oauthcommand "github.com/goliatone/go-oauth/command"
	"github.com/goliatone/go-oauth/core"
	oauthquery "github.com/goliatone/go-oauth/query"
)

type CommandQueryService interface {
	oauthcommand.TokenService
	oauthquery.AuthorizationReader
}

type Commands struct {
	ExchangeCode *oauthcommand.ExchangeCodeCommand
	SignRequest  *oauthcommand.SignRequestCommand
}

type Queries struct {
	AuthorizationURL *oauthquery.AuthorizationURLQuery
	Version          *oauthquery.VersionQuery
}

// Facade exposes a Service through go-command handlers.
type Facade struct {
	service  CommandQueryService
	commands Commands
	queries  Queries
}

func NewFacade(service CommandQueryService) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("oauth: command/query service is required")
	}
	return &Facade{
		service: service,
		commands: Commands{
			ExchangeCode: oauthcommand.NewExchangeCodeCommand(service),
			SignRequest:  oauthcommand.NewSignRequestCommand(service),
		},
		queries: Queries{
			AuthorizationURL: oauthquery.NewAuthorizationURLQuery(service),
			Version:          oauthquery.NewVersionQuery(service),
		},
	}, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() CommandQueryService {
	if f == nil {
		return nil
	}
	return f.service
}

var _ CommandQueryService = (*core.Service)(nil)
