// Package runner wraps external process invocation behind a narrow interface
// so the pipeline can be exercised in tests without spawning real tools.
package runner

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"pycargo/internal/logger"
)

// Runner executes external programs and waits for them to finish. No timeout
// is enforced; callers block until the process exits.
type Runner interface {
	// Run executes the program and discards stdout. A non-zero exit yields an
	// *ExitError carrying the captured stderr; a program that cannot be
	// started yields a *SpawnError.
	Run(name string, args ...string) error

	// Output executes the program and returns its trimmed stdout. Error
	// classification matches Run.
	Output(name string, args ...string) (string, error)
}

// SpawnError means the program could not be located or started at all.
type SpawnError struct {
	Cmd string
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Cmd, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError means the program started but exited with a non-zero status.
// Stderr holds the captured error output, surfaced verbatim to the user.
type ExitError struct {
	Cmd    string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("command failed: %s (exit status %d)", e.Cmd, e.Code)
	}
	return fmt.Sprintf("command failed: %s (exit status %d)\n%s", e.Cmd, e.Code, e.Stderr)
}

// Exec is the real Runner backed by os/exec.
type Exec struct{}

// Run executes the program, capturing stderr for diagnostics.
func (Exec) Run(name string, args ...string) error {
	_, err := run(name, args)
	return err
}

// Output executes the program and returns its trimmed standard output.
func (Exec) Output(name string, args ...string) (string, error) {
	out, err := run(name, args)
	return strings.TrimSpace(out), err
}

func run(name string, args []string) (string, error) {
	display := name
	if len(args) > 0 {
		display = name + " " + strings.Join(args, " ")
	}
	logger.Debug("[DEBUG] Running command: %s\n", display)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return stdout.String(), &ExitError{
				Cmd:    display,
				Code:   exitErr.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		// Anything other than a non-zero exit means the process never ran
		// (program missing, permission denied, ...).
		return "", &SpawnError{Cmd: display, Err: err}
	}

	return stdout.String(), nil
}
