// Package extractors parses token endpoint responses into core.Token values.
//
// JSONExtractor handles RFC 6749 section 5.1 JSON bodies, FormExtractor the
// form-encoded bodies some providers still return, and AutoExtractor picks
// between them by looking at the body.
package extractors
