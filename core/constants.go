package core

// Version is the OAuth protocol version implemented by Service.
const Version = "2.0"

// Protocol parameter names.
const (
	ParamCode         = "code"
	ParamRedirectURI  = "redirect_uri"
	ParamScope        = "scope"
	ParamClientID     = "client_id"
	ParamClientSecret = "client_secret"
	ParamAccessToken  = "access_token"
	ParamResponseType = "response_type"
)

const (
	HeaderAuthorization = "Authorization"

	BasicScheme  = "Basic"
	BearerScheme = "Bearer"
)
