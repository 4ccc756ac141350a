package proxyspec

// Placeholder tokens recognized in specification templates. Anything
// else in braces is a configuration error caught at registration.
const (
	PlaceholderApplicationTokenID      = "{applicationTokenId}"
	PlaceholderUserTokenID             = "{userTokenId}"
	PlaceholderLogonServiceURL         = "{logonServiceUrl}"
	PlaceholderSecurityTokenServiceURL = "{securityTokenServiceUrl}"
)

// Specification is a named, parameterized description of one backend
// call. Immutable after registration; resolution clones it per request.
type Specification struct {
	Method            string            `json:"method"`
	Name              string            `json:"name"`
	TargetURLTemplate string            `json:"targetUrl"`
	HeaderTemplates   map[string]string `json:"headers,omitempty"`
	BodyTemplate      string            `json:"body,omitempty"`
}

// Resolved is a specification with every placeholder substituted for one
// request. Value object, consumed exactly once by a command.
type Resolved struct {
	Method    string
	Name      string
	TargetURL string
	Headers   map[string]string
	Body      string
}
