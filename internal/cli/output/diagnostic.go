package output

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/parser"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// ErrorLocation extracts the source location of a tokenizer or parser
// error. ok is false for errors without one.
func ErrorLocation(err error) (loc token.Location, ok bool) {
	var pe *parser.ParseError
	if errors.As(err, &pe) && pe.Location.IsValid() {
		return pe.Location, true
	}
	var le *parser.LexError
	if errors.As(err, &le) && le.Location.IsValid() {
		return le.Location, true
	}
	return token.Location{}, false
}

// SourceLine returns line n (1-based) of src without its terminator.
func SourceLine(src string, n int) (string, bool) {
	if n < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}

// caretPad returns the indentation that puts a caret under column col of
// line. Tabs are kept so the caret lines up in any tab width.
func caretPad(line string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteRune(' ')
	}
	return b.String()
}

// FormatDiagnostic renders err as
//
//	error: <message>
//	  --> name:line:column
//	   |
//	 3 | SELECT * FORM t
//	   |          ^
//
// The excerpt is omitted when err carries no usable location.
func FormatDiagnostic(s *Styles, name, src string, err error) string {
	var b strings.Builder
	b.WriteString(s.Error.Render("error:"))
	b.WriteString(" ")
	b.WriteString(err.Error())
	b.WriteString("\n")

	loc, ok := ErrorLocation(err)
	if !ok {
		return b.String()
	}
	if name == "" {
		name = "<stdin>"
	}
	fmt.Fprintf(&b, "  %s %s:%d:%d\n", s.Muted.Render("-->"), name, loc.Line, loc.Column)

	line, ok := SourceLine(src, loc.Line)
	if !ok {
		return b.String()
	}
	num := strconv.Itoa(loc.Line)
	gutter := strings.Repeat(" ", len(num))
	bar := s.Muted.Render("|")
	fmt.Fprintf(&b, " %s %s\n", gutter, bar)
	fmt.Fprintf(&b, " %s %s %s\n", s.Muted.Render(num), bar, line)
	fmt.Fprintf(&b, " %s %s %s%s\n", gutter, bar, caretPad(line, loc.Column), s.Caret.Render("^"))
	return b.String()
}
