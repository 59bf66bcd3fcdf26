package commands

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// maxExcerpt bounds the SQL excerpts shown in tables and trees.
const maxExcerpt = 60

// nodeKind names the AST type of n without package or pointer.
func nodeKind(n any) string {
	t := reflect.TypeOf(n)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "nil"
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// excerpt collapses whitespace in s and shortens it to maxExcerpt runes.
func excerpt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= maxExcerpt {
		return s
	}
	return string(r[:maxExcerpt-3]) + "..."
}

// renderSQL prints each statement in canonical form.
func renderSQL(w io.Writer, stmts []ast.Statement) {
	for _, s := range stmts {
		_, _ = fmt.Fprintf(w, "%s;\n", s)
	}
}

// renderTree prints an outline of every statement's syntax tree.
func renderTree(w io.Writer, stmts []ast.Statement) {
	l := list.NewWriter()
	l.SetOutputMirror(w)
	l.SetStyle(list.StyleConnectedLight)
	for _, s := range stmts {
		appendTreeNode(l, s)
	}
	l.Render()
}

func appendTreeNode(l list.Writer, n ast.Node) {
	children := ast.Children(n)
	label := nodeKind(n)
	if sp := ast.Span(n); !sp.IsEmpty() {
		label += " " + sp.String()
	}
	if len(children) == 0 {
		label += "  " + excerpt(n.String())
	}
	l.AppendItem(label)
	if len(children) == 0 {
		return
	}
	l.Indent()
	for _, c := range children {
		appendTreeNode(l, c)
	}
	l.UnIndent()
}

// renderSpans prints one row per statement with its source range.
func renderSpans(w io.Writer, stmts []ast.Statement) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Kind", "Span", "SQL"})
	for i, s := range stmts {
		t.AppendRow(table.Row{i + 1, nodeKind(s), ast.Span(s).String(), excerpt(s.String())})
	}
	t.Render()
}

// renderTokens prints the token stream, trivia included when present.
func renderTokens(w io.Writer, toks []token.TokenWithSpan) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Text", "Keyword", "Span"})
	for _, tok := range toks {
		kw := ""
		if tok.Type == token.WORD && tok.Quote == 0 && tok.Keyword != keyword.NoKeyword {
			kw = tok.Keyword.String()
		}
		text := excerpt(tok.Token.String())
		if tok.Type == token.WHITESPACE {
			text = strconv.Quote(tok.Value)
		}
		t.AppendRow(table.Row{tok.Type.String(), text, kw, tok.Span.String()})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d tokens)\n", len(toks))
}
