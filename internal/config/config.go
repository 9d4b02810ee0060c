// Package config resolves raw command-line input into a validated bootstrap
// request. Resolution is pure: it never touches the filesystem or spawns a
// process, so a rejected request leaves no trace behind.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pycargo/internal/template"
)

// TokenEnv is the environment variable holding the GitHub access token.
// It is only required when GitHub integration is requested.
const TokenEnv = "GITHUB_TOKEN"

// ErrInvalidTemplate is returned when the requested setup template is not a
// recognized identifier.
var ErrInvalidTemplate = errors.New("invalid setup template")

// ErrMissingToken is returned when GitHub integration is requested but the
// access token environment variable is unset or empty. This is detected here,
// before any directory is created, so a missing credential never leaves a
// half-bootstrapped project behind.
var ErrMissingToken = errors.New(TokenEnv + " environment variable is not set")

// ErrEmptyName is returned when the project name is empty or not a plain
// path segment.
var ErrEmptyName = errors.New("project name must be a non-empty path segment")

// Options carries the raw values collected from CLI flags and arguments,
// before validation.
type Options struct {
	Name     string // positional project name
	Setup    string // template identifier
	GitHub   bool   // create a GitHub repository and push
	RepoName string // optional custom GitHub repository name
	Private  bool   // GitHub repository visibility
}

// Request is a validated bootstrap request. Once constructed it is safe to
// hand to the pipeline: the template is known, and when GitHub integration is
// requested the token is present and the repository name is resolved.
type Request struct {
	Name     string
	Setup    string
	GitHub   bool
	RepoName string
	Private  bool
}

// Resolve validates opts against the template store and the environment and
// returns a Request ready for the pipeline.
func Resolve(opts Options, store *template.Store) (Request, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" || strings.ContainsAny(name, "/\\") {
		return Request{}, fmt.Errorf("%w (got %q)", ErrEmptyName, opts.Name)
	}

	if !store.Has(opts.Setup) {
		return Request{}, fmt.Errorf("%w: %q (known templates: %s)",
			ErrInvalidTemplate, opts.Setup, strings.Join(store.Names(), ", "))
	}

	req := Request{
		Name:    name,
		Setup:   opts.Setup,
		GitHub:  opts.GitHub,
		Private: opts.Private,
	}

	if opts.GitHub {
		// The credential check happens here, strictly before any side effect.
		if strings.TrimSpace(os.Getenv(TokenEnv)) == "" {
			return Request{}, ErrMissingToken
		}
		// The GitHub repository name defaults to the project name.
		req.RepoName = opts.RepoName
		if req.RepoName == "" {
			req.RepoName = name
		}
	}

	return req, nil
}
