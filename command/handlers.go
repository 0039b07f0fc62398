package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-oauth/core"
)

type TokenService interface {
	GetAccessToken(ctx context.Context, requestToken *core.Token, verifier core.Verifier) (core.Token, error)
	SignRequest(ctx context.Context, token core.Token, req *core.Request) error
}

type ExchangeCodeCommand struct {
	service TokenService
}

func NewExchangeCodeCommand(service TokenService) *ExchangeCodeCommand {
	return &ExchangeCodeCommand{service: service}
}

// Execute exchanges the verifier and stores the token in the result
// collector carried by ctx, if any.
func (c *ExchangeCodeCommand) Execute(ctx context.Context, msg ExchangeCodeMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: token service is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	token, err := c.service.GetAccessToken(ctx, msg.RequestToken, msg.Verifier)
	if err != nil {
		return err
	}
	storeResult(ctx, token)
	return nil
}

type SignRequestCommand struct {
	service TokenService
}

func NewSignRequestCommand(service TokenService) *SignRequestCommand {
	return &SignRequestCommand{service: service}
}

func (c *SignRequestCommand) Execute(ctx context.Context, msg SignRequestMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: token service is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	return c.service.SignRequest(ctx, msg.Token, msg.Request)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
