package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[ExchangeCodeMessage] = (*ExchangeCodeCommand)(nil)
	_ gocmd.Commander[SignRequestMessage]  = (*SignRequestCommand)(nil)
)
