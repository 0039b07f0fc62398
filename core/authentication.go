package core

import "encoding/base64"

// ClientAuthentication proves the client's identity to the token endpoint.
// The set of implementations is closed: BasicAuthentication and
// RequestParameterAuthentication.
type ClientAuthentication interface {
	Scheme() ClientAuthScheme
	Apply(req *Request, cfg Config)

	clientAuthentication()
}

type BasicAuthentication struct{}

func (BasicAuthentication) Scheme() ClientAuthScheme { return ClientAuthBasic }

func (BasicAuthentication) Apply(req *Request, cfg Config) {
	req.AddHeader(HeaderAuthorization, BasicScheme+" "+BasicCredentials(cfg.APIKey, cfg.APISecret))
}

func (BasicAuthentication) clientAuthentication() {}

type RequestParameterAuthentication struct{}

func (RequestParameterAuthentication) Scheme() ClientAuthScheme { return ClientAuthRequestParameter }

func (RequestParameterAuthentication) Apply(req *Request, cfg Config) {
	req.AddQuerystringParameter(ParamClientID, cfg.APIKey)
	req.AddQuerystringParameter(ParamClientSecret, cfg.APISecret)
}

func (RequestParameterAuthentication) clientAuthentication() {}

// BasicCredentials encodes "key:secret" as standard base64. The pair is not
// form-encoded first.
func BasicCredentials(apiKey string, apiSecret string) string {
	return base64.StdEncoding.EncodeToString([]byte(apiKey + ":" + apiSecret))
}

// ClientAuthenticationFor resolves the variant for a validated scheme.
func ClientAuthenticationFor(scheme ClientAuthScheme) (ClientAuthentication, error) {
	parsed, ok := ParseClientAuthScheme(string(scheme))
	if !ok {
		return nil, invalidConfigurationError("core: unsupported client authentication scheme: "+string(scheme), map[string]any{
			"auth_scheme": string(scheme),
		})
	}
	if parsed == ClientAuthBasic {
		return BasicAuthentication{}, nil
	}
	return RequestParameterAuthentication{}, nil
}
