// Package pipeline implements the bootstrap orchestration: the ordered,
// strictly sequential side-effecting steps that turn a project name into a
// provisioned, committed, optionally GitHub-hosted workspace.
//
// Every step failure is fatal to the remainder of the run. No compensating
// rollback is performed: side effects applied before the failing step
// (created directory, written files, changed global git identity) are left in
// place for the user to inspect.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pycargo/internal/config"
	"pycargo/internal/fetch"
	"pycargo/internal/gitcfg"
	"pycargo/internal/github"
	"pycargo/internal/logger"
	"pycargo/internal/runner"
	"pycargo/internal/template"
)

// Default URLs for the downloaded assets.
const (
	DefaultGitignoreURL = "https://raw.githubusercontent.com/github/gitignore/main/Python.gitignore"
	DefaultLicenseURL   = "https://www.apache.org/licenses/LICENSE-2.0.txt"
)

// ManifestFile is the dependency manifest filename written into the project.
const ManifestFile = "requirements.txt"

// ErrDirectoryExists is returned by the preflight check when the target
// project directory is already present. Nothing has been touched when this
// error is returned.
var ErrDirectoryExists = errors.New("directory already exists")

// Reporter observes pipeline progress. It is write-only: nothing it does can
// influence control flow, so a no-op implementation is always safe.
type Reporter interface {
	// Section starts a new phase of the run (project setup, downloads, ...).
	Section(title string)
	// Stepf announces a step that is now in flight.
	Stepf(format string, a ...any)
	// Successf marks the in-flight step as completed.
	Successf(format string, a ...any)
	// Notef prints a secondary hint (activation instructions and the like).
	Notef(format string, a ...any)
}

// nopReporter is used when no Reporter is wired, keeping the pipeline free of
// nil checks at every call site.
type nopReporter struct{}

func (nopReporter) Section(string)          {}
func (nopReporter) Stepf(string, ...any)    {}
func (nopReporter) Successf(string, ...any) {}
func (nopReporter) Notef(string, ...any)    {}

// Pipeline owns a single bootstrap run. All collaborators are injected so the
// whole state machine can be exercised against fakes.
//
// The pipeline takes one-way ownership of the process working directory: it
// chdirs into the new project after creating it and never changes back.
type Pipeline struct {
	Runner    runner.Runner
	Fetcher   fetch.Fetcher
	Identity  gitcfg.Store
	Prompt    gitcfg.PromptSource
	Templates *template.Store
	Repos     github.RepoCreator
	Reporter  Reporter

	GitignoreURL string
	LicenseURL   string
}

// New assembles a pipeline with the default asset URLs. Collaborators left
// nil by the caller must be filled in before Run (except Reporter, which
// defaults to a no-op).
func New() *Pipeline {
	return &Pipeline{
		GitignoreURL: DefaultGitignoreURL,
		LicenseURL:   DefaultLicenseURL,
	}
}

// Run executes the bootstrap state machine for req and returns the first
// fatal error, tagged with the name of the failing step.
func (p *Pipeline) Run(req config.Request) error {
	r := p.Reporter
	if r == nil {
		r = nopReporter{}
	}

	r.Section("Project Setup")

	// The existence check must precede every other step: a clash aborts the
	// run before a single subprocess is spawned.
	if err := p.preflight(req.Name); err != nil {
		return fmt.Errorf("preflight: %w", err)
	}

	// Global git identity is solicited and persisted before anything is
	// created, the only step allowed to mutate state outside the project.
	for _, id := range []struct{ key, label string }{
		{"user.name", "name"},
		{"user.email", "email"},
	} {
		if err := p.ensureIdentity(r, id.key, id.label); err != nil {
			return fmt.Errorf("identity check (%s): %w", id.key, err)
		}
	}

	if err := p.ensureUv(r); err != nil {
		return fmt.Errorf("dependency check: %w", err)
	}

	r.Stepf("Creating project directory %s...", req.Name)
	if err := os.Mkdir(req.Name, 0755); err != nil {
		return fmt.Errorf("directory creation: %w", err)
	}
	// One-way transition: every later step runs inside the project.
	if err := os.Chdir(req.Name); err != nil {
		return fmt.Errorf("directory creation: %w", err)
	}
	r.Successf("Created project directory: %s", req.Name)

	r.Section("Environment Setup")

	if err := p.initEnvironment(r); err != nil {
		return fmt.Errorf("environment setup: %w", err)
	}

	if err := p.writeManifest(r, req.Setup); err != nil {
		return fmt.Errorf("manifest setup: %w", err)
	}

	r.Section("File Downloads")

	// The gitignore rules come first; a failure here means the license is
	// never fetched and the repository is never initialized.
	if err := p.download(r, p.GitignoreURL, ".gitignore"); err != nil {
		return fmt.Errorf("asset download (.gitignore): %w", err)
	}
	if err := p.download(r, p.LicenseURL, "LICENSE"); err != nil {
		return fmt.Errorf("asset download (LICENSE): %w", err)
	}

	r.Section("Git Setup")

	if err := p.initRepository(r); err != nil {
		return fmt.Errorf("repository setup: %w", err)
	}

	if req.GitHub {
		if err := p.integrateGitHub(r, req); err != nil {
			return fmt.Errorf("GitHub integration: %w", err)
		}
	}

	r.Section("Setup Completed")
	r.Notef("To activate the virtual environment, run:")
	r.Notef("  source .venv/bin/activate        (POSIX shells)")
	r.Notef("  .venv\\Scripts\\activate           (Windows)")

	return nil
}

// preflight rejects the run when the target already exists as any kind of
// filesystem entry.
func (p *Pipeline) preflight(name string) error {
	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("%w: %s", ErrDirectoryExists, name)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return nil
}

// ensureIdentity reads one global identity key, prompting for and persisting
// a value when it is unset.
func (p *Pipeline) ensureIdentity(r Reporter, key, label string) error {
	r.Stepf("Checking git config for %s...", key)

	value, err := p.Identity.Get(key)
	if err != nil {
		return err
	}
	if value != "" {
		r.Successf("Git %s already configured", key)
		return nil
	}

	logger.Debug("[DEBUG] git %s unset, prompting\n", key)
	input, err := p.Prompt.Request(key, label)
	if err != nil {
		return err
	}
	if err := p.Identity.Set(key, input); err != nil {
		return err
	}
	r.Successf("Git %s configured", key)
	return nil
}

// ensureUv probes for the uv executable and performs a one-time self-install
// through pip when it is missing.
func (p *Pipeline) ensureUv(r Reporter) error {
	r.Stepf("Checking uv installation...")

	if err := p.Runner.Run("uv", "--version"); err != nil {
		logger.Debug("[DEBUG] uv probe failed: %v\n", err)
		r.Notef("uv not found. Installing uv...")
		if err := p.Runner.Run("pip", "install", "uv"); err != nil {
			return err
		}
		r.Successf("uv installed")
		return nil
	}

	r.Successf("uv is already installed")
	return nil
}

// initEnvironment initializes project metadata and creates the virtual
// environment, two sequential uv invocations.
func (p *Pipeline) initEnvironment(r Reporter) error {
	r.Stepf("Initializing uv...")
	if err := p.Runner.Run("uv", "init", "."); err != nil {
		return err
	}
	r.Successf("Initialized project with uv")

	r.Stepf("Creating virtual environment...")
	if err := p.Runner.Run("uv", "venv", ".venv"); err != nil {
		return err
	}
	r.Successf("Created virtual environment")
	return nil
}

// writeManifest materializes the template into requirements.txt and installs
// the declared dependencies. For the blank template the file is written empty
// and the install invocations are skipped entirely.
func (p *Pipeline) writeManifest(r Reporter, setup string) error {
	content, ok := p.Templates.Lookup(setup)
	if !ok {
		// Resolution validates the template before the run, so this only
		// trips when the pipeline is wired with a different store.
		return fmt.Errorf("%w: %q", config.ErrInvalidTemplate, setup)
	}

	r.Stepf("Writing %s...", ManifestFile)
	if err := os.WriteFile(ManifestFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ManifestFile, err)
	}
	r.Successf("Created %s from %q template", ManifestFile, setup)

	if setup == template.Blank {
		logger.Debug("[DEBUG] blank template, skipping dependency install\n")
		return nil
	}

	r.Stepf("Installing requirements...")
	if err := p.Runner.Run("uv", "add", "-r", ManifestFile); err != nil {
		return err
	}
	if err := p.Runner.Run("uv", "sync"); err != nil {
		return err
	}
	r.Successf("Installed requirements")
	return nil
}

// download fetches one asset and writes it verbatim to filename.
func (p *Pipeline) download(r Reporter, url, filename string) error {
	r.Stepf("Downloading %s...", filename)

	body, err := p.Fetcher.Fetch(url)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	r.Successf("Downloaded %s", filename)
	return nil
}

// initRepository creates the local repository and commits everything
// bootstrapped so far as the initial revision.
func (p *Pipeline) initRepository(r Reporter) error {
	r.Stepf("Initializing git repository...")

	for _, args := range [][]string{
		{"init"},
		{"config", "core.autocrlf", "true"},
		{"add", "."},
		{"commit", "-m", "Initial commit"},
	} {
		if err := p.Runner.Run("git", args...); err != nil {
			return err
		}
	}

	r.Successf("Initialized git repository")
	r.Successf("Committed initial state")
	return nil
}

// integrateGitHub provisions the remote repository and pushes the initial
// commit. It runs last: the push requires the local commit to exist.
func (p *Pipeline) integrateGitHub(r Reporter, req config.Request) error {
	r.Section("GitHub Setup")

	// Defense in depth: resolution already validated the token, but the
	// pipeline refuses to call the API without one.
	if strings.TrimSpace(os.Getenv(config.TokenEnv)) == "" {
		return config.ErrMissingToken
	}

	r.Stepf("Creating GitHub repository via API...")
	if err := p.Repos.CreateRepo(req.RepoName, req.Private); err != nil {
		return err
	}
	r.Successf("GitHub repository %q created", req.RepoName)

	r.Stepf("Setting up GitHub remote...")
	if err := p.Runner.Run("git", "branch", "-M", "main"); err != nil {
		return err
	}

	owner, err := p.Identity.Get("user.name")
	if err != nil {
		return err
	}
	if owner == "" {
		return errors.New("git user.name is not configured; cannot derive remote URL")
	}

	remoteURL := fmt.Sprintf("https://github.com/%s/%s.git", owner, req.RepoName)
	if err := p.Runner.Run("git", "remote", "add", "origin", remoteURL); err != nil {
		return err
	}
	if err := p.Runner.Run("git", "push", "-u", "origin", "main"); err != nil {
		return err
	}

	r.Successf("GitHub repository created: %s", strings.TrimSuffix(remoteURL, ".git"))
	return nil
}
