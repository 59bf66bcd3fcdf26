package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/generic"
	"github.com/leapstack-labs/sqlkit/pkg/parser"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

func parseOne(t *testing.T, sql string) ast.Statement {
	t.Helper()
	stmts, err := parser.Parse(generic.Generic, sql)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	return stmts[0]
}

// ---------- Rendering Tests ----------

func TestNodeString(t *testing.T) {
	a := ast.NewIdent("a")
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{
			name: "binary",
			node: &ast.BinaryOp{Left: a, Op: ast.OpPlus, Right: ast.Lit(ast.Number("1", false))},
			want: "a + 1",
		},
		{
			name: "nested",
			node: &ast.Nested{Expr: &ast.BinaryOp{Left: a, Op: ast.OpAnd, Right: ast.Lit(ast.Boolean(true))}},
			want: "(a AND TRUE)",
		},
		{
			name: "unary not",
			node: &ast.UnaryOp{Op: ast.UnaryNot, Expr: a},
			want: "NOT a",
		},
		{name: "quoted ident", node: ast.QuotedIdent(`we"ird`, '"'), want: `"we""ird"`},
		{name: "bracket ident", node: ast.QuotedIdent("a b", '['), want: "[a b]"},
		{name: "string", node: ast.Lit(ast.SingleQuotedString("it's")), want: "'it''s'"},
		{name: "dollar string", node: ast.Lit(ast.DollarQuotedString("fn", "x")), want: "$fn$x$fn$"},
		{name: "null", node: ast.Lit(ast.Null()), want: "NULL"},
		{name: "placeholder", node: ast.Lit(ast.Placeholder("$1")), want: "$1"},
		{
			name: "object name",
			node: ast.NewObjectName(ast.NewIdent("db"), ast.QuotedIdent("My Table", '"')),
			want: `db."My Table"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestOneOrManyWithParens(t *testing.T) {
	one := ast.One(ast.NewIdent("a"))
	assert.Equal(t, "a", one.String())
	assert.Equal(t, 1, one.Len())

	many := ast.Many([]ast.Ident{ast.NewIdent("a"), ast.NewIdent("b")})
	assert.Equal(t, "(a, b)", many.String())

	single := ast.Many([]ast.Ident{ast.NewIdent("a")})
	assert.Equal(t, "(a)", single.String())
}

func TestObjectNameHelpers(t *testing.T) {
	name := ast.NewObjectName(ast.NewIdent("s"), ast.NewIdent("t"))
	assert.Equal(t, "t", name.Last().Value)
	assert.Equal(t, []ast.Ident{ast.NewIdent("s"), ast.NewIdent("t")}, name.Idents())
	assert.Equal(t, ast.Ident{}, ast.ObjectName(nil).Last())
}

// ---------- Equality and Hash Tests ----------

func TestEqualIgnoresSpans(t *testing.T) {
	a := parseOne(t, "SELECT a + 1 FROM t WHERE b")
	b := parseOne(t, "select a+1\n  from t\n where b")

	assert.True(t, ast.Equal(a, b))
	assert.Empty(t, ast.Diff(a, b))
	assert.Equal(t, ast.Hash(a), ast.Hash(b))
	assert.NotEqual(t, ast.Span(a), ast.Span(b))
}

func TestEqualDetectsDifferences(t *testing.T) {
	a := parseOne(t, "SELECT a FROM t")
	b := parseOne(t, "SELECT b FROM t")

	assert.False(t, ast.Equal(a, b))
	diff := ast.Diff(a, b)
	assert.Contains(t, diff, `"a"`)
	assert.Contains(t, diff, `"b"`)
	assert.NotEqual(t, ast.Hash(a), ast.Hash(b))
}

func TestEqualQuotedVersusBare(t *testing.T) {
	a := parseOne(t, `SELECT "a" FROM t`)
	b := parseOne(t, `SELECT a FROM t`)
	assert.False(t, ast.Equal(a, b), "quote style is part of the tree")
}

// ---------- Span Tests ----------

func TestSpanCoversStatement(t *testing.T) {
	stmt := parseOne(t, "SELECT a FROM t")
	sp := ast.Span(stmt)
	assert.Equal(t, token.Location{Line: 1, Column: 1, Offset: 0}, sp.Start)
	assert.Equal(t, token.Location{Line: 1, Column: 16, Offset: 15}, sp.End)
	assert.Equal(t, "(1,1)-(1,16)", sp.String())
}

func TestSpanMultiline(t *testing.T) {
	src := "SELECT a\nFROM t\nWHERE b = 1"
	sp := ast.Span(parseOne(t, src))
	assert.Equal(t, 1, sp.Start.Line)
	assert.Equal(t, 3, sp.End.Line)
	assert.Equal(t, len(src), sp.End.Offset)
}

func TestSpanOfBuiltNodeIsEmpty(t *testing.T) {
	n := &ast.BinaryOp{Left: ast.NewIdent("a"), Op: ast.OpEq, Right: ast.NewIdent("b")}
	assert.True(t, ast.Span(n).IsEmpty())
	assert.True(t, ast.Span(nil).IsEmpty())
}

func TestChildSpansAreEnclosed(t *testing.T) {
	stmt := parseOne(t, "SELECT x.a, count(*) FROM t AS x JOIN u ON x.id = u.id GROUP BY 1")
	outer := ast.Span(stmt)
	ast.Walk(stmt, func(n ast.Node) bool {
		assert.True(t, outer.Encloses(ast.Span(n)), "%T %s", n, ast.Span(n))
		return true
	})
}

// ---------- Walk Tests ----------

func TestWalkSourceOrder(t *testing.T) {
	stmt := parseOne(t, "SELECT a, b + c FROM t WHERE d")
	var idents []string
	ast.Walk(stmt, func(n ast.Node) bool {
		if id, ok := n.(ast.Ident); ok {
			idents = append(idents, id.Value)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "c", "t", "d"}, idents)
}

func TestWalkSkipsChildren(t *testing.T) {
	stmt := parseOne(t, "SELECT (a + b) FROM t")
	var sawIdentInsideNested bool
	ast.Walk(stmt, func(n ast.Node) bool {
		if _, ok := n.(*ast.Nested); ok {
			return false
		}
		if id, ok := n.(ast.Ident); ok && (id.Value == "a" || id.Value == "b") {
			sawIdentInsideNested = true
		}
		return true
	})
	assert.False(t, sawIdentInsideNested)
}

func TestChildren(t *testing.T) {
	n := &ast.BinaryOp{Left: ast.NewIdent("a"), Op: ast.OpPlus, Right: ast.Lit(ast.Number("2", false))}
	children := ast.Children(n)
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].String())
	assert.Equal(t, "2", children[1].String())

	assert.Empty(t, ast.Children(ast.NewIdent("leaf")))
	assert.Nil(t, ast.Children(nil))
}
