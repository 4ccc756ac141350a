package ssologin

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/parkgate/spaproxy/applications"
)

const (
	queryParamTargetApplicationID = "targetApplicationId"
	queryParamSSOLoginUUID        = "ssoLoginUUID"
)

// BuildRedirectQueryParams returns a copy of the caller's original query
// parameters with targetApplicationId and ssoLoginUUID added. Original
// keys are preserved untouched; on a collision the added keys win.
func BuildRedirectQueryParams(id uuid.UUID, app applications.Application, original url.Values) url.Values {
	params := make(url.Values, len(original)+2)
	for key, values := range original {
		params[key] = append([]string(nil), values...)
	}
	params.Set(queryParamTargetApplicationID, app.ID)
	params.Set(queryParamSSOLoginUUID, id.String())
	return params
}

// BuildPopupEntryPointURIWithApplicationSession builds the popup entry
// point for a caller that already holds an application session secret:
// {base}/application/session/{secret}/user/auth/ssologin/{id}.
func BuildPopupEntryPointURIWithApplicationSession(baseURI, sessionSecret string, id uuid.UUID) string {
	return fmt.Sprintf("%s/application/session/%s/user/auth/ssologin/%s",
		strings.TrimSuffix(baseURI, "/"), sessionSecret, id)
}

// BuildPopupEntryPointURIWithoutApplicationSession builds the first-time,
// unauthenticated popup entry point keyed by bare application name:
// {base}/application/{name}/user/auth/ssologin/{id}.
func BuildPopupEntryPointURIWithoutApplicationSession(baseURI, applicationName string, id uuid.UUID) string {
	return fmt.Sprintf("%s/application/%s/user/auth/ssologin/%s",
		strings.TrimSuffix(baseURI, "/"), applicationName, id)
}

// BuildLogonRedirectURL builds the backend logon URL the browser is sent
// to during the redirect step. The caller's original query parameters are
// forwarded verbatim alongside redirectURI and appName.
func BuildLogonRedirectURL(logonServiceURL, gatewayBaseURL, applicationName string, passThrough url.Values) (string, error) {
	logonURL, err := url.Parse(logonServiceURL)
	if err != nil {
		return "", fmt.Errorf("parsing logon service url: %w", err)
	}
	logonURL = logonURL.JoinPath("login")

	params := make(url.Values, len(passThrough)+2)
	for key, values := range passThrough {
		params[key] = append([]string(nil), values...)
	}
	params.Set("redirectURI", fmt.Sprintf("%s/load/%s", strings.TrimSuffix(gatewayBaseURL, "/"), applicationName))
	params.Set("appName", applicationName)

	logonURL.RawQuery = params.Encode()
	return logonURL.String(), nil
}
