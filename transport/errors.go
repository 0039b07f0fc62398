package transport

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-oauth/core"
)

// failure describes one way Send can fail before a response reaches the
// caller. Provider error bodies are not failures; they come back as responses.
type failure struct {
	category goerrors.Category
	status   int
	message  string
}

var (
	errMissingClient   = failure{goerrors.CategoryInternal, http.StatusInternalServerError, "transport: http transport requires an http client"}
	errMissingRequest  = failure{goerrors.CategoryBadInput, http.StatusBadRequest, "transport: request is required"}
	errMissingEndpoint = failure{goerrors.CategoryBadInput, http.StatusBadRequest, "transport: request endpoint is required"}
	errBuildRequest    = failure{goerrors.CategoryBadInput, http.StatusBadRequest, "transport: create http request"}
	errExecute         = failure{goerrors.CategoryExternal, http.StatusBadGateway, "transport: execute http request"}
	errReadBody        = failure{goerrors.CategoryExternal, http.StatusBadGateway, "transport: read response body"}
	errBodyTooLarge    = failure{goerrors.CategoryExternal, http.StatusBadGateway, "transport: response body exceeds limit"}
)

func (f failure) textCode() string {
	switch f.category {
	case goerrors.CategoryBadInput:
		return core.ErrorBadInput
	case goerrors.CategoryExternal:
		return core.ErrorTransportFailure
	default:
		return core.ErrorInternal
	}
}

// with builds the go-errors envelope, wrapping cause when there is one.
func (f failure) with(cause error, metadata map[string]any) error {
	var err *goerrors.Error
	if cause != nil {
		err = goerrors.Wrap(cause, f.category, f.message)
	} else {
		err = goerrors.New(f.message, f.category)
	}
	err = err.WithCode(f.status).WithTextCode(f.textCode())
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func requestMetadata(req *core.Request) map[string]any {
	return map[string]any{"method": req.Verb, "endpoint": req.Endpoint}
}
