package core

// SignatureStrategy attaches an access token to a protected request. The set
// of implementations is closed: BearerHeaderSignature, QueryStringSignature
// and UnsupportedSignature.
type SignatureStrategy interface {
	Type() SignatureType
	Sign(token Token, req *Request) error

	signatureStrategy()
}

type BearerHeaderSignature struct{}

func (BearerHeaderSignature) Type() SignatureType { return SignatureBearerHeader }

func (BearerHeaderSignature) Sign(token Token, req *Request) error {
	req.AddHeader(HeaderAuthorization, BearerScheme+" "+token.Token)
	return nil
}

func (BearerHeaderSignature) signatureStrategy() {}

type QueryStringSignature struct{}

func (QueryStringSignature) Type() SignatureType { return SignatureQueryString }

func (QueryStringSignature) Sign(token Token, req *Request) error {
	req.AddQuerystringParameter(ParamAccessToken, token.Token)
	return nil
}

func (QueryStringSignature) signatureStrategy() {}

// UnsupportedSignature stands for a configured placement that OAuth 2.0 cannot
// sign with. Sign always fails and leaves the request untouched.
type UnsupportedSignature struct {
	Configured SignatureType
}

func (s UnsupportedSignature) Type() SignatureType { return s.Configured }

func (s UnsupportedSignature) Sign(Token, *Request) error {
	return invalidConfigurationError("core: non supported signature type: "+string(s.Configured), map[string]any{
		"signature_type": string(s.Configured),
	})
}

func (UnsupportedSignature) signatureStrategy() {}

func SignatureStrategyFor(signatureType SignatureType) SignatureStrategy {
	parsed, ok := ParseSignatureType(string(signatureType))
	if !ok {
		return UnsupportedSignature{Configured: signatureType}
	}
	switch parsed {
	case SignatureBearerHeader:
		return BearerHeaderSignature{}
	case SignatureQueryString:
		return QueryStringSignature{}
	default:
		return UnsupportedSignature{Configured: parsed}
	}
}
