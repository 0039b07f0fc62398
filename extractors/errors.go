package extractors

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-oauth/core"
)

func extractionError(message string, metadata map[string]any) error {
	err := goerrors.New(message, goerrors.CategoryExternal).
		WithCode(http.StatusBadGateway).
		WithTextCode(core.ErrorTokenExtractionFailed)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func extractionWrapError(source error, message string) error {
	if source == nil {
		return extractionError(message, nil)
	}
	return goerrors.Wrap(source, goerrors.CategoryExternal, message).
		WithCode(http.StatusBadGateway).
		WithTextCode(core.ErrorTokenExtractionFailed)
}
