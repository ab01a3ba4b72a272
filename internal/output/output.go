// Package output provides context-aware output for figit.
// Stdout is used for primary data output (listings, outcome lines).
// Stderr (via the log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

type ctxKey struct{}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Okf writes a success outcome line.
func (p *Printer) Okf(format string, a ...any) {
	fmt.Fprintln(p.w, okStyle.Render("✓")+" "+fmt.Sprintf(format, a...))
}

// Warnf writes a warning or neutral-notice outcome line.
func (p *Printer) Warnf(format string, a ...any) {
	fmt.Fprintln(p.w, warnStyle.Render("!")+" "+fmt.Sprintf(format, a...))
}

// Failf writes a failure outcome line. It does not change the exit code;
// callers decide whether a failure is fatal.
func (p *Printer) Failf(format string, a ...any) {
	fmt.Fprintln(p.w, failStyle.Render("✗")+" "+fmt.Sprintf(format, a...))
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
