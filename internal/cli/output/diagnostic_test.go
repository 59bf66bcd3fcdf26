package output_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/internal/cli/output"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/generic"
	"github.com/leapstack-labs/sqlkit/pkg/parser"
)

func plainStyles() *output.Styles {
	return output.NewStyles(&bytes.Buffer{}, "never")
}

// ---------- Diagnostic Tests ----------

func TestFormatDiagnostic(t *testing.T) {
	src := "SELECT a\nFROM t\nWHERE a = = 1"
	_, err := parser.Parse(generic.Generic, src)
	require.Error(t, err)

	got := output.FormatDiagnostic(plainStyles(), "query.sql", src, err)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.True(t, strings.HasPrefix(lines[0], "error: expected an expression"), lines[0])
	assert.Equal(t, "  --> query.sql:3:11", lines[1])
	assert.Equal(t, "   |", lines[2])
	assert.Equal(t, " 3 | WHERE a = = 1", lines[3])
	assert.Equal(t, "   |           ^", lines[4])
}

func TestFormatDiagnosticLexError(t *testing.T) {
	src := "SELECT 'open"
	_, err := parser.Parse(generic.Generic, src)
	require.Error(t, err)

	got := output.FormatDiagnostic(plainStyles(), "", src, err)
	assert.Contains(t, got, "unterminated string literal")
	assert.Contains(t, got, "<stdin>:1:8")
	assert.Contains(t, got, "       ^")
}

func TestFormatDiagnosticWithoutLocation(t *testing.T) {
	got := output.FormatDiagnostic(plainStyles(), "x.sql", "SELECT 1", errors.New("boom"))
	assert.Equal(t, "error: boom\n", got)
}

func TestFormatDiagnosticKeepsTabs(t *testing.T) {
	src := "\tSELECT\t)"
	_, err := parser.Parse(generic.Generic, src)
	require.Error(t, err)

	got := output.FormatDiagnostic(plainStyles(), "t.sql", src, err)
	assert.Contains(t, got, "\t      \t^")
}

func TestSourceLine(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		n      int
		want   string
		wantOK bool
	}{
		{name: "first", src: "a\nb", n: 1, want: "a", wantOK: true},
		{name: "crlf", src: "a\r\nb", n: 1, want: "a", wantOK: true},
		{name: "last", src: "a\nb", n: 2, want: "b", wantOK: true},
		{name: "past end", src: "a", n: 2},
		{name: "zero", src: "a", n: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := output.SourceLine(tt.src, tt.n)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---------- Renderer Tests ----------

func TestRendererNeverColor(t *testing.T) {
	var out, errOut bytes.Buffer
	r := output.NewRenderer(&out, &errOut, "never")

	r.Println("hello")
	r.Printf("%d\n", 42)
	r.Warnf("careful %s", "now")

	assert.Equal(t, "hello\n42\n", out.String())
	assert.Equal(t, "careful now\n", errOut.String())
	assert.NotContains(t, errOut.String(), "\x1b[", "no escape codes when color is never")
}

func TestRendererAlwaysColor(t *testing.T) {
	var out, errOut bytes.Buffer
	r := output.NewRenderer(&out, &errOut, "always")
	r.Diagnostic("x.sql", "SELECT 1", errors.New("boom"))
	assert.Contains(t, errOut.String(), "\x1b[")
	assert.Contains(t, errOut.String(), "boom")
}
