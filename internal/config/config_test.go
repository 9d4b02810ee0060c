package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pycargo/internal/config"
	"pycargo/internal/template"
)

func TestResolveDefaults(t *testing.T) {
	req, err := config.Resolve(config.Options{Name: "demo", Setup: "advanced"}, template.Builtin())
	require.NoError(t, err)
	require.Equal(t, "demo", req.Name)
	require.Equal(t, "advanced", req.Setup)
	require.False(t, req.GitHub)
	// No GitHub integration means no repo name is resolved.
	require.Empty(t, req.RepoName)
}

func TestResolveRejectsUnknownTemplate(t *testing.T) {
	_, err := config.Resolve(config.Options{Name: "demo", Setup: "fancy"}, template.Builtin())
	require.ErrorIs(t, err, config.ErrInvalidTemplate)
	require.Contains(t, err.Error(), "fancy")
	require.Contains(t, err.Error(), "data-science")
}

func TestResolveRejectsBadNames(t *testing.T) {
	for _, name := range []string{"", "   ", "a/b", `a\b`} {
		_, err := config.Resolve(config.Options{Name: name, Setup: "basic"}, template.Builtin())
		require.ErrorIs(t, err, config.ErrEmptyName, "name %q", name)
	}
}

func TestResolveRequiresTokenForGitHub(t *testing.T) {
	t.Setenv(config.TokenEnv, "")

	_, err := config.Resolve(config.Options{Name: "demo", Setup: "basic", GitHub: true}, template.Builtin())
	require.ErrorIs(t, err, config.ErrMissingToken)
}

func TestResolveTokenNotRequiredWithoutGitHub(t *testing.T) {
	t.Setenv(config.TokenEnv, "")

	_, err := config.Resolve(config.Options{Name: "demo", Setup: "basic"}, template.Builtin())
	require.NoError(t, err)
}

func TestResolveRepoNameDefaultsToProjectName(t *testing.T) {
	t.Setenv(config.TokenEnv, "tok")

	req, err := config.Resolve(config.Options{Name: "demo", Setup: "basic", GitHub: true}, template.Builtin())
	require.NoError(t, err)
	require.Equal(t, "demo", req.RepoName)

	req, err = config.Resolve(config.Options{
		Name: "demo", Setup: "basic", GitHub: true, RepoName: "demo-py", Private: true,
	}, template.Builtin())
	require.NoError(t, err)
	require.Equal(t, "demo-py", req.RepoName)
	require.True(t, req.Private)
}
