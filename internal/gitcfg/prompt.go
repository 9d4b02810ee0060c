package gitcfg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PromptSource asks the user for a missing identity value. The pipeline only
// depends on this capability, never on stdin directly, so tests can script
// the answers.
type PromptSource interface {
	// Request solicits a value for the given config key. label is the
	// human-friendly word used in the question ("name", "email").
	Request(key, label string) (string, error)
}

// StdinPrompt reads answers line by line from an input stream, normally
// os.Stdin.
type StdinPrompt struct {
	In io.Reader

	// reader buffers the input stream. It is created once and reused across
	// Request calls: a fresh bufio.Reader per call would swallow any input
	// buffered past the first answer, losing the second one when both
	// identity values arrive on piped stdin.
	reader *bufio.Reader
}

// Request prints the question and reads one trimmed line. A read failure
// (closed stdin, EOF) is fatal to the pipeline.
func (p *StdinPrompt) Request(key, label string) (string, error) {
	if p.reader == nil {
		in := p.In
		if in == nil {
			in = os.Stdin
		}
		p.reader = bufio.NewReader(in)
	}

	fmt.Printf("Git %s is not configured. Please enter your %s: ", key, label)

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read %s from input: %w", label, err)
	}
	return strings.TrimSpace(line), nil
}
