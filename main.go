package main

import (
	"pycargo/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The pycargo project is a Python project bootstrapper that:
//   - Creates a fresh project directory and refuses to touch one that already exists
//   - Ensures global git identity (user.name, user.email) is configured, prompting for
//     missing values and persisting them before anything else happens
//   - Provisions an isolated environment with the `uv` package manager, installing `uv`
//     itself via pip when it is not on the PATH
//   - Writes a requirements.txt from a named template (basic, advanced, data-science,
//     or blank) and installs the declared dependencies into the environment
//   - Downloads a Python .gitignore and the Apache-2.0 LICENSE text over HTTP
//   - Initializes a git repository and commits the bootstrapped tree as the initial revision
//   - Optionally creates a GitHub repository through the REST API and pushes the commit
//
// Error handling strategy:
//   - Input and credential problems are rejected during configuration resolution,
//     before any side effect touches the filesystem
//   - Every pipeline step failure is fatal: the run halts immediately, the failing
//     step and its underlying cause are printed to stderr, and the process exits
//     with a non-zero status. Partially applied side effects are left in place.
//
// Integration points:
//   - Invokes `uv`, `pip`, and `git` as external processes, capturing their stderr
//     so failures can be surfaced verbatim
//   - Talks to the GitHub repository-creation endpoint with a bearer token taken
//     from the GITHUB_TOKEN environment variable (a local .env file is honored)
func main() {
	cmd.Execute()
}
