// Package providers contains OAuth 2.0 API descriptors. OAuth2API covers any
// provider that follows the authorization code grant; the github, google and
// facebook subpackages preconfigure it with the vendor endpoints published by
// golang.org/x/oauth2.
package providers
