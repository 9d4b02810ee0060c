// Package ui renders pipeline progress on the terminal: section banners,
// green check lines, yellow hints, and a spinner while a step is in flight.
// It implements pipeline.Reporter and is strictly an observer of the run.
package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	sectionColor = color.New(color.FgBlue, color.Bold)
	successColor = color.New(color.FgGreen)
	noteColor    = color.New(color.FgYellow)
)

// Console is the terminal reporter used by the CLI.
type Console struct {
	spin *spinner.Spinner
}

// NewConsole returns a reporter with an idle spinner.
func NewConsole() *Console {
	return &Console{
		// CharSet 14 is the braille dot spinner, ticking every 100ms.
		spin: spinner.New(spinner.CharSets[14], 100*time.Millisecond),
	}
}

// Section prints a bold blue banner for the next pipeline phase.
func (c *Console) Section(title string) {
	c.stop()
	sectionColor.Printf("\n=== %s ===\n", title)
}

// Stepf starts the spinner with the step description as its message.
func (c *Console) Stepf(format string, a ...any) {
	c.stop()
	c.spin.Suffix = " " + sprintf(format, a...)
	c.spin.Start()
}

// Successf stops the spinner and prints a green confirmation line.
func (c *Console) Successf(format string, a ...any) {
	c.stop()
	successColor.Printf("✅ %s\n", sprintf(format, a...))
}

// Notef stops the spinner and prints a yellow hint line.
func (c *Console) Notef(format string, a ...any) {
	c.stop()
	noteColor.Printf("%s\n", sprintf(format, a...))
}

func (c *Console) stop() {
	if c.spin.Active() {
		c.spin.Stop()
	}
}

func sprintf(format string, a ...any) string {
	if len(a) == 0 {
		return format
	}
	return fmt.Sprintf(format, a...)
}
