// Package core contains the OAuth 2.0 client contracts, value types and the
// Service that exchanges an authorization code for an access token and signs
// outbound requests with it. Transport, token extraction and provider specific
// URL building are collaborators behind interfaces; core must not depend on
// any concrete transport or provider package.
package core
