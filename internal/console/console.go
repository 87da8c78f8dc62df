// Package console writes hook status lines the way Composer's IO does: plain
// messages go to stdout, progress and diagnostics go to stderr, and
// <info>, <comment> and <error> tags mark highlighted spans.
package console

import (
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var tagPattern = regexp.MustCompile(`<(info|comment|error)>(.*?)</(?:info|comment|error)>`)

// IO is the pair of output streams handed to a hook.
type IO struct {
	out, err    io.Writer
	outRenderer *lipgloss.Renderer
	errRenderer *lipgloss.Renderer
}

// New returns an IO writing to out and err. Each stream gets its own
// renderer so color is only emitted on terminals.
func New(out, err io.Writer) *IO {
	return &IO{
		out:         out,
		err:         err,
		outRenderer: lipgloss.NewRenderer(out),
		errRenderer: lipgloss.NewRenderer(err),
	}
}

// Write prints a formatted line to stdout.
func (c *IO) Write(format string, args ...any) {
	fmt.Fprintln(c.out, render(c.outRenderer, fmt.Sprintf(format, args...)))
}

// WriteError prints a formatted line to stderr.
func (c *IO) WriteError(format string, args ...any) {
	fmt.Fprintln(c.err, render(c.errRenderer, fmt.Sprintf(format, args...)))
}

// render replaces markup tags with styled text.
func render(r *lipgloss.Renderer, msg string) string {
	return tagPattern.ReplaceAllStringFunc(msg, func(m string) string {
		parts := tagPattern.FindStringSubmatch(m)
		return styleFor(r, parts[1]).Render(parts[2])
	})
}

func styleFor(r *lipgloss.Renderer, tag string) lipgloss.Style {
	switch tag {
	case "info":
		return r.NewStyle().Foreground(lipgloss.Color("2"))
	case "comment":
		return r.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		return r.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1"))
	}
}
