package proxyspec_test

import (
	"net/http"
	"testing"

	"github.com/parkgate/spaproxy/proxyspec"
	"github.com/stretchr/testify/require"
)

func TestResolve_SubstitutesAllPlaceholders(t *testing.T) {
	spec := proxyspec.Specification{
		Method:            http.MethodGet,
		Name:              "addresses",
		TargetURLTemplate: "{securityTokenServiceUrl}/{applicationTokenId}/spasession/{userTokenId}/deliveryaddress",
		HeaderTemplates:   map[string]string{"X-Application-Token": "{applicationTokenId}"},
		BodyTemplate:      "",
	}

	resolved := proxyspec.Resolve(spec, "appTok1", "userTok1", "http://logon", "http://sts")

	require.Equal(t, "http://sts/appTok1/spasession/userTok1/deliveryaddress", resolved.TargetURL)
	require.Equal(t, "appTok1", resolved.Headers["X-Application-Token"])
}

func TestResolve_RepeatedResolutionDoesNotCrossContaminate(t *testing.T) {
	spec := proxyspec.Specification{
		Method:            http.MethodPost,
		Name:              "consent",
		TargetURLTemplate: "{securityTokenServiceUrl}/{applicationTokenId}/consent",
		HeaderTemplates:   map[string]string{"X-User-Token": "{userTokenId}"},
		BodyTemplate:      `{"user":"{userTokenId}"}`,
	}

	first := proxyspec.Resolve(spec, "appA", "userA", "http://logon", "http://sts")
	second := proxyspec.Resolve(spec, "appB", "userB", "http://logon", "http://sts")

	require.Equal(t, "http://sts/appA/consent", first.TargetURL)
	require.Equal(t, "http://sts/appB/consent", second.TargetURL)
	require.Equal(t, `{"user":"userA"}`, first.Body)
	require.Equal(t, `{"user":"userB"}`, second.Body)
	require.Equal(t, "userA", first.Headers["X-User-Token"])
	require.Equal(t, "userB", second.Headers["X-User-Token"])

	// The registered template itself is untouched.
	require.Equal(t, "{securityTokenServiceUrl}/{applicationTokenId}/consent", spec.TargetURLTemplate)
	require.Equal(t, "{userTokenId}", spec.HeaderTemplates["X-User-Token"])
}

func TestResolve_TrimsTrailingSlashOnBaseURLs(t *testing.T) {
	spec := proxyspec.Specification{
		Method:            http.MethodGet,
		Name:              "login",
		TargetURLTemplate: "{logonServiceUrl}/login",
	}

	resolved := proxyspec.Resolve(spec, "", "", "http://logon/", "")
	require.Equal(t, "http://logon/login", resolved.TargetURL)
}
