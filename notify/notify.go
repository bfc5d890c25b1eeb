// Package notify renders non-blocking operator notifications, the
// console analog of the web client's toasts.
package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Console writes styled notifications to a writer (normally stderr, so
// exported table/CSV output stays clean on stdout).
type Console struct {
	out io.Writer
}

// NewConsole creates a console notifier.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, warnStyle.Render("! "+msg))
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, successStyle.Render("✓ "+msg))
}

func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, infoStyle.Render(msg))
}
