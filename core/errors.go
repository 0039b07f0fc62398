package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorBadInput              = "OAUTH_BAD_INPUT"
	ErrorInvalidConfiguration  = "OAUTH_INVALID_CONFIGURATION"
	ErrorUnsupportedOperation  = "OAUTH_UNSUPPORTED_OPERATION"
	ErrorTokenExtractionFailed = "OAUTH_TOKEN_EXTRACTION_FAILED"
	ErrorTransportFailure      = "OAUTH_TRANSPORT_FAILURE"
	ErrorInternal              = "OAUTH_INTERNAL_ERROR"
)

func invalidConfigurationError(message string, metadata map[string]any) *goerrors.Error {
	err := goerrors.New(message, goerrors.CategoryValidation).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorInvalidConfiguration)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func unsupportedOperationError(message string) *goerrors.Error {
	return goerrors.New(message, goerrors.CategoryOperation).
		WithCode(http.StatusNotImplemented).
		WithTextCode(ErrorUnsupportedOperation)
}

func IsInvalidConfiguration(err error) bool {
	return HasTextCode(err, ErrorInvalidConfiguration)
}

func IsUnsupportedOperation(err error) bool {
	return HasTextCode(err, ErrorUnsupportedOperation)
}

func HasTextCode(err error, textCode string) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == textCode
}

// configErrorMapper turns construction failures into go-errors envelopes.
// Errors raised by transport or extractor collaborators never pass through it.
func configErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureErrorEnvelope(richErr)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"),
		strings.Contains(msg, "unsupported"), strings.Contains(msg, "unknown"):
		return ensureErrorEnvelope(
			goerrors.Wrap(err, goerrors.CategoryValidation, err.Error()).
				WithTextCode(ErrorInvalidConfiguration),
		)
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureErrorEnvelope(mapped)
}

func ensureErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = httpStatusFor(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryValidation:
		return ErrorInvalidConfiguration
	case goerrors.CategoryBadInput:
		return ErrorBadInput
	case goerrors.CategoryOperation:
		return ErrorUnsupportedOperation
	case goerrors.CategoryExternal:
		return ErrorTransportFailure
	default:
		return ErrorInternal
	}
}

func httpStatusFor(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryOperation:
		return http.StatusNotImplemented
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
