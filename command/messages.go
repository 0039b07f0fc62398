package command

import (
	"strings"

	"github.com/goliatone/go-oauth/core"
)

const (
	TypeExchangeCode = "oauth.command.access_token.exchange"
	TypeSignRequest  = "oauth.command.request.sign"
)

type ExchangeCodeMessage struct {
	RequestToken *core.Token
	Verifier     core.Verifier
}

func (ExchangeCodeMessage) Type() string { return TypeExchangeCode }

func (m ExchangeCodeMessage) Validate() error {
	if strings.TrimSpace(m.Verifier.Value) == "" {
		return commandValidationError("verifier", "authorization code is required")
	}
	return nil
}

type SignRequestMessage struct {
	Token   core.Token
	Request *core.Request
}

func (SignRequestMessage) Type() string { return TypeSignRequest }

func (m SignRequestMessage) Validate() error {
	if m.Request == nil {
		return commandValidationError("request", "request is required")
	}
	return nil
}
