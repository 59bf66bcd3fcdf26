package output

import (
	"fmt"
	"io"
)

// Renderer writes command output and diagnostics.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	styles *Styles
	errSty *Styles
}

// NewRenderer creates a renderer. color is one of auto, always or never
// and is resolved separately for each stream.
func NewRenderer(out, errOut io.Writer, color string) *Renderer {
	return &Renderer{
		out:    out,
		errOut: errOut,
		styles: NewStyles(out, color),
		errSty: NewStyles(errOut, color),
	}
}

// Out returns the standard output stream.
func (r *Renderer) Out() io.Writer { return r.out }

// Err returns the diagnostic stream.
func (r *Renderer) Err() io.Writer { return r.errOut }

// Styles returns the styles for standard output.
func (r *Renderer) Styles() *Styles { return r.styles }

// Println writes a line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Diagnostic writes a styled error report for err found in src to the
// diagnostic stream.
func (r *Renderer) Diagnostic(name, src string, err error) {
	_, _ = fmt.Fprint(r.errOut, FormatDiagnostic(r.errSty, name, src, err))
}

// Warnf writes a styled warning line to the diagnostic stream.
func (r *Renderer) Warnf(format string, a ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.errSty.Warning.Render(fmt.Sprintf(format, a...)))
}
