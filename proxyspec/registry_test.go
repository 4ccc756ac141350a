package proxyspec_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/parkgate/spaproxy/proxyspec"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetIsExactOnMethodAndName(t *testing.T) {
	registry := proxyspec.NewRegistry()
	require.NoError(t, registry.Register(proxyspec.Specification{
		Method:            http.MethodGet,
		Name:              "deliveryaddress",
		TargetURLTemplate: "{securityTokenServiceUrl}/{applicationTokenId}/spasession/{userTokenId}/deliveryaddress",
	}))

	_, ok := registry.Get(http.MethodGet, "deliveryaddress")
	require.True(t, ok)

	_, ok = registry.Get(http.MethodPost, "deliveryaddress")
	require.False(t, ok)

	_, ok = registry.Get(http.MethodGet, "somethingElse")
	require.False(t, ok)
}

func TestRegistry_RejectsUnknownPlaceholder(t *testing.T) {
	registry := proxyspec.NewRegistry()

	err := registry.Register(proxyspec.Specification{
		Method:            http.MethodGet,
		Name:              "broken",
		TargetURLTemplate: "{securityTokenServiceUrl}/{misspelledToken}/whatever",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "{misspelledToken}")
}

func TestRegistry_RejectsUnsupportedMethod(t *testing.T) {
	registry := proxyspec.NewRegistry()

	err := registry.Register(proxyspec.Specification{
		Method:            http.MethodDelete,
		Name:              "nope",
		TargetURLTemplate: "{securityTokenServiceUrl}/x",
	})
	require.Error(t, err)
}

func TestRegistry_LoadDir(t *testing.T) {
	dir := t.TempDir()
	specJSON := `[
		{"method":"GET","name":"addresses","targetUrl":"{securityTokenServiceUrl}/{applicationTokenId}/spasession/{userTokenId}/deliveryaddress"},
		{"method":"POST","name":"consent","targetUrl":"{securityTokenServiceUrl}/{applicationTokenId}/consent","body":"{\"userTokenId\":\"{userTokenId}\"}"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "specs.json"), []byte(specJSON), 0o600))

	registry := proxyspec.NewRegistry()
	require.NoError(t, registry.LoadDir(dir))

	_, ok := registry.Get(http.MethodGet, "addresses")
	require.True(t, ok)
	_, ok = registry.Get(http.MethodPost, "consent")
	require.True(t, ok)
	require.Len(t, registry.Names(), 2)
}

func TestRegistry_LoadDirMissingDirIsFine(t *testing.T) {
	registry := proxyspec.NewRegistry()
	require.NoError(t, registry.LoadDir("/path/that/does/not/exist"))
}

func TestRegistry_LoadDirFailsFastOnBrokenTemplate(t *testing.T) {
	dir := t.TempDir()
	specJSON := `{"method":"GET","name":"broken","targetUrl":"{notAThing}/x"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(specJSON), 0o600))

	registry := proxyspec.NewRegistry()
	require.Error(t, registry.LoadDir(dir))
}
