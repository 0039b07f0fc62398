package extractors

import (
	"strings"

	"github.com/goliatone/go-oauth/core"
)

// AutoExtractor decodes JSON objects with JSONExtractor and everything else
// with FormExtractor.
type AutoExtractor struct{}

func (AutoExtractor) Extract(body string) (core.Token, error) {
	if strings.HasPrefix(strings.TrimSpace(body), "{") {
		return JSONExtractor{}.Extract(body)
	}
	return FormExtractor{}.Extract(body)
}

var _ core.Extractor = AutoExtractor{}
