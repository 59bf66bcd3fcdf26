package parser_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/bigquery"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/clickhouse"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/databricks"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/duckdb"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/generic"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/snowflake"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/sqlite"
	"github.com/leapstack-labs/sqlkit/pkg/parser"
)

// render joins the canonical form of stmts with "; ".
func render(stmts []ast.Statement) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ")
}

// roundTrip parses sql, checks that the rendering re-parses to an equal
// tree and renders identically, and returns the rendering.
func roundTrip(t *testing.T, d *dialect.Dialect, sql string) string {
	t.Helper()
	stmts, err := parser.Parse(d, sql)
	require.NoError(t, err, "parse %q", sql)

	out := render(stmts)
	again, err := parser.Parse(d, out)
	require.NoError(t, err, "re-parse %q", out)
	require.Len(t, again, len(stmts))
	for i := range stmts {
		assert.True(t, ast.Equal(stmts[i], again[i]), "tree changed after rendering:\n%s", ast.Diff(stmts[i], again[i]))
		assert.Equal(t, ast.Hash(stmts[i]), ast.Hash(again[i]))
	}
	assert.Equal(t, out, render(again), "rendering is not a fixed point")
	return out
}

// ---------- Canonical Rendering Tests ----------

func TestParseCanonical(t *testing.T) {
	tests := []struct {
		name string
		d    *dialect.Dialect
		sql  string
		want string
	}{
		{"select", generic.Generic, "select a , b from t", "SELECT a, b FROM t"},
		{"alias", generic.Generic, "SELECT a x FROM t y", "SELECT a AS x FROM t AS y"},
		{"where", generic.Generic, "SELECT * FROM t WHERE a=1 AND b<>2", "SELECT * FROM t WHERE a = 1 AND b <> 2"},
		{"left outer join", generic.Generic, "SELECT 1 FROM a LEFT OUTER JOIN b ON a.id=b.id", "SELECT 1 FROM a LEFT JOIN b ON a.id = b.id"},
		{"cast", generic.Generic, "SELECT CAST(a AS int)", "SELECT CAST(a AS INT)"},
		{"pg cast", postgres.Postgres, "SELECT a::text", "SELECT a::TEXT"},
		{"case", generic.Generic, "SELECT CASE WHEN a THEN 1 ELSE 2 END", "SELECT CASE WHEN a THEN 1 ELSE 2 END"},
		{"order limit", generic.Generic, "SELECT a FROM t ORDER BY a DESC NULLS LAST LIMIT 10 OFFSET 5", "SELECT a FROM t ORDER BY a DESC NULLS LAST LIMIT 10 OFFSET 5"},
		{"mysql limit comma", mysql.MySQL, "SELECT a FROM t LIMIT 5, 10", "SELECT a FROM t LIMIT 5, 10"},
		{"mssql top", mssql.MsSQL, "SELECT TOP 5 a FROM t", "SELECT TOP 5 a FROM t"},
		{"duckdb from first", duckdb.DuckDB, "FROM t SELECT a", "FROM t SELECT a"},
		{"string", generic.Generic, "SELECT 'it''s'", "SELECT 'it''s'"},
		{"quoted ident", postgres.Postgres, `SELECT "Mixed Case" FROM "T"`, `SELECT "Mixed Case" FROM "T"`},
		{"drop", generic.Generic, "drop table if exists a, b", "DROP TABLE IF EXISTS a, b"},
		{"duckdb install", duckdb.DuckDB, "install httpfs", "INSTALL httpfs"},
		{"duckdb load", duckdb.DuckDB, "load httpfs", "LOAD httpfs"},
		{"leading dot number", postgres.Postgres, "SELECT .5, a FROM t WHERE b > .25", "SELECT .5, a FROM t WHERE b > .25"},
		{"mysql backslash", mysql.MySQL, `SELECT 'c\\d'`, `SELECT 'c\\d'`},
		{"mysql escaped quote", mysql.MySQL, `SELECT 'a\'b'`, `SELECT 'a''b'`},
		{"mysql escaped newline", mysql.MySQL, `SELECT 'a\nb\\n'`, "SELECT 'a\nb\\\\n'"},
		{"bigquery trailing backslash", bigquery.BigQuery, `SELECT 'x\\y\\'`, `SELECT 'x\\y\\'`},
		{"postgres backslash is literal", postgres.Postgres, `SELECT 'c\d'`, `SELECT 'c\d'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundTrip(t, tt.d, tt.sql))
		})
	}
}

func TestParseMultipleStatements(t *testing.T) {
	stmts, err := parser.Parse(generic.Generic, "SELECT 1; SELECT 2;;\n; SELECT 3;")
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Equal(t, "SELECT 3", stmts[2].String())
}

func TestParseQueryShape(t *testing.T) {
	stmts, err := parser.Parse(generic.Generic, "WITH c AS (SELECT 1) SELECT DISTINCT a FROM c WHERE a > 0 ORDER BY a LIMIT 3")
	require.NoError(t, err)

	q, ok := stmts[0].(*ast.Query)
	require.True(t, ok, "got %T", stmts[0])
	require.NotNil(t, q.With)
	require.Len(t, q.With.CTEs, 1)
	assert.Equal(t, "c", q.With.CTEs[0].Alias.Name.Value)
	require.NotNil(t, q.OrderBy)
	require.NotNil(t, q.Limit)

	sel, ok := q.Body.(*ast.Select)
	require.True(t, ok, "got %T", q.Body)
	assert.NotNil(t, sel.Distinct)
	require.Len(t, sel.Projection, 1)
	require.Len(t, sel.From, 1)
	bin, ok := sel.Selection.(*ast.BinaryOp)
	require.True(t, ok, "got %T", sel.Selection)
	assert.Equal(t, ast.OpGt, bin.Op)
}

func TestOperatorPrecedence(t *testing.T) {
	stmts, err := parser.Parse(generic.Generic, "SELECT 1 + 2 * 3 = 7 OR NOT a AND b")
	require.NoError(t, err)
	sel := stmts[0].(*ast.Query).Body.(*ast.Select)
	expr := sel.Projection[0].(*ast.UnnamedExpr).Expr

	or, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpOr, or.Op)

	eq := or.Left.(*ast.BinaryOp)
	assert.Equal(t, ast.OpEq, eq.Op)
	plus := eq.Left.(*ast.BinaryOp)
	assert.Equal(t, ast.OpPlus, plus.Op)
	mul := plus.Right.(*ast.BinaryOp)
	assert.Equal(t, ast.OpMultiply, mul.Op)

	and := or.Right.(*ast.BinaryOp)
	assert.Equal(t, ast.OpAnd, and.Op)
	_, isNot := and.Left.(*ast.UnaryOp)
	assert.True(t, isNot)
}

// ---------- Dialect Gating Tests ----------

func TestDialectGating(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		accepts  []*dialect.Dialect
		rejected []*dialect.Dialect
	}{
		{
			name:     "double colon cast",
			sql:      "SELECT a::INT",
			accepts:  []*dialect.Dialect{postgres.Postgres, duckdb.DuckDB, snowflake.Snowflake, generic.Generic},
			rejected: []*dialect.Dialect{ansi.ANSI, mysql.MySQL},
		},
		{
			name:     "qualify",
			sql:      "SELECT a FROM t QUALIFY ROW_NUMBER() OVER (ORDER BY a) = 1",
			accepts:  []*dialect.Dialect{snowflake.Snowflake, duckdb.DuckDB},
			rejected: []*dialect.Dialect{postgres.Postgres},
		},
		{
			name:     "prewhere",
			sql:      "SELECT a FROM t PREWHERE b = 1",
			accepts:  []*dialect.Dialect{clickhouse.ClickHouse},
			rejected: []*dialect.Dialect{postgres.Postgres, mysql.MySQL},
		},
		{
			name:     "from first",
			sql:      "FROM t SELECT a",
			accepts:  []*dialect.Dialect{duckdb.DuckDB},
			rejected: []*dialect.Dialect{postgres.Postgres},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, d := range tt.accepts {
				_, err := parser.Parse(d, tt.sql)
				assert.NoError(t, err, d.Name())
			}
			for _, d := range tt.rejected {
				_, err := parser.Parse(d, tt.sql)
				assert.Error(t, err, d.Name())
			}
		})
	}
}

// ---------- Error Tests ----------

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		kind parser.ParseErrorKind
		msg  string
	}{
		{
			name: "expected expression",
			sql:  "SELECT a FROM t WHERE b = = 1",
			kind: parser.Expected,
			msg:  "expected an expression, found: = at line 1 column 27",
		},
		{
			name: "expected expression multiline",
			sql:  "SELECT a\nFROM t\nWHERE b = = 1",
			kind: parser.Expected,
			msg:  "expected an expression, found: = at line 3 column 11",
		},
		{
			name: "missing delimiter",
			sql:  "SELECT 1 SELECT 2",
			kind: parser.TrailingToken,
			msg:  "expected end of statement, found: SELECT at line 1 column 10",
		},
		{
			name: "empty",
			sql:  "",
			kind: parser.EmptyInput,
		},
		{
			name: "only semicolons",
			sql:  " ; ;",
			kind: parser.EmptyInput,
		},
		{
			name: "eof in expression",
			sql:  "SELECT 1 +",
			kind: parser.Expected,
			msg:  "expected an expression, found: EOF at line 1 column 11",
		},
		{
			name: "not a statement",
			sql:  "42",
			kind: parser.Expected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(generic.Generic, tt.sql)
			require.Error(t, err)
			var pe *parser.ParseError
			require.True(t, errors.As(err, &pe), "got %T", err)
			assert.Equal(t, tt.kind, pe.Kind)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
		})
	}
}

func TestUnsupportedSentinel(t *testing.T) {
	_, err := parser.Parse(postgres.Postgres, "CREATE OPERATOR === (LEFTARG = int, RIGHTARG = int, FUNCTION = f)")
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrUnsupported)
	assert.NotErrorIs(t, err, parser.ErrRecursionLimitExceeded)
}

// ---------- Recursion Limit Tests ----------

func nested(depth int) string {
	return "SELECT " + strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
}

func TestRecursionLimit(t *testing.T) {
	_, err := parser.Parse(generic.Generic, nested(20))
	require.NoError(t, err)

	_, err = parser.Parse(generic.Generic, nested(200))
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrRecursionLimitExceeded)

	_, err = parser.New(generic.Generic).WithRecursionLimit(500).ParseSQL(nested(200))
	assert.NoError(t, err)

	_, err = parser.New(generic.Generic).WithRecursionLimit(5).ParseSQL(nested(10))
	assert.ErrorIs(t, err, parser.ErrRecursionLimitExceeded)

	deep := nested(10001)
	_, err = parser.New(generic.Generic).WithRecursionLimit(1000).ParseSQL(deep)
	assert.ErrorIs(t, err, parser.ErrRecursionLimitExceeded)
	_, err = parser.New(generic.Generic).WithRecursionLimit(20000).ParseSQL(deep)
	assert.NoError(t, err)
}

func TestRecursionLimitSubqueries(t *testing.T) {
	sql := strings.Repeat("SELECT * FROM (", 100) + "SELECT 1" + strings.Repeat(")", 100)
	_, err := parser.Parse(generic.Generic, sql)
	assert.ErrorIs(t, err, parser.ErrRecursionLimitExceeded)
}

// ---------- Statement Shape Tests ----------

func TestAttachDatabase(t *testing.T) {
	sql := "ATTACH DATABASE 'other.db' AS aux"
	stmts, err := parser.Parse(sqlite.SQLite, sql)
	require.NoError(t, err)
	a, ok := stmts[0].(*ast.AttachDatabase)
	require.True(t, ok, "got %T", stmts[0])
	assert.True(t, a.DatabaseKeyword)
	require.NotNil(t, a.Alias)
	assert.Equal(t, "aux", a.Alias.Value)
	assert.Equal(t, sql, roundTrip(t, sqlite.SQLite, sql))
}

func TestIdentifierNameFunction(t *testing.T) {
	p, err := parser.New(snowflake.Snowflake).TryWithSQL("IDENTIFIER('db.t')")
	require.NoError(t, err)
	name, err := p.ParseObjectName()
	require.NoError(t, err)
	require.Len(t, name, 1)
	require.NotNil(t, name[0].Function)
	require.Len(t, name[0].Function.Args, 1)
	assert.Equal(t, "'db.t'", name[0].Function.Args[0].Value.String())
	assert.Equal(t, "IDENTIFIER('db.t')", name.String())

	roundTrip(t, snowflake.Snowflake, "SELECT * FROM IDENTIFIER('db.t')")
}

// ---------- Trivia Tests ----------

// respace rebuilds src from its tokens with sep between every pair.
func respace(t *testing.T, d *dialect.Dialect, src, sep string) string {
	t.Helper()
	toks, err := parser.Tokenize(d, src)
	require.NoError(t, err)
	parts := make([]string, 0, len(toks))
	for _, tok := range toks[:len(toks)-1] {
		parts = append(parts, src[tok.Span.Start.Offset:tok.Span.End.Offset])
	}
	return strings.Join(parts, sep)
}

func TestWhitespaceAndCommentsDoNotChangeTree(t *testing.T) {
	queries := []string{
		"SELECT a, b + 1 AS c FROM t WHERE a.x = 'y' ORDER BY c DESC LIMIT 3",
		"WITH q AS (SELECT 1 AS n) SELECT n FROM q UNION ALL SELECT 2",
		"INSERT INTO t (a, b) VALUES (1, 'x'), (2, NULL)",
		"UPDATE t SET a = a * 2 WHERE b IN (SELECT b FROM u)",
		"SELECT CASE WHEN a::INT > .5 THEN 1 ELSE 0 END FROM t",
		"CREATE TABLE t (id INT PRIMARY KEY, name TEXT NOT NULL)",
	}
	seps := []string{"  ", "\n\t", " /* note */ ", " -- note\n"}

	for _, q := range queries {
		base, err := parser.Parse(postgres.Postgres, q)
		require.NoError(t, err, q)
		for _, sep := range seps {
			variant := respace(t, postgres.Postgres, q, sep)
			t.Run(variant, func(t *testing.T) {
				got, err := parser.Parse(postgres.Postgres, variant)
				require.NoError(t, err)
				require.Len(t, got, len(base))
				assert.True(t, ast.Equal(base[0], got[0]), ast.Diff(base[0], got[0]))
				assert.Equal(t, render(base), render(got))
			})
		}
	}
}

// ---------- Procedural Tests ----------

func TestTryCatchWithoutDelimiter(t *testing.T) {
	stmts, err := parser.Parse(mssql.MsSQL, "BEGIN TRY SELECT 1 END TRY BEGIN CATCH SELECT 2 END CATCH")
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	try, ok := stmts[0].(*ast.BeginEnd)
	require.True(t, ok, "got %T", stmts[0])
	assert.Equal(t, "TRY", try.Kind)
	catch, ok := stmts[1].(*ast.BeginEnd)
	require.True(t, ok, "got %T", stmts[1])
	assert.Equal(t, "CATCH", catch.Kind)

	// only CATCH may follow END TRY without a delimiter
	_, err = parser.Parse(mssql.MsSQL, "BEGIN TRY SELECT 1 END TRY SELECT 2")
	assert.Error(t, err)
}

// ---------- Options Tests ----------

func TestDottedOptionKeyKeepsQuoting(t *testing.T) {
	sql := "CREATE TABLE t (a INT) TBLPROPERTIES (`delta`.appendOnly = true, mode = 'x')"
	stmts, err := parser.Parse(databricks.Databricks, sql)
	require.NoError(t, err)
	ct, ok := stmts[0].(*ast.CreateTable)
	require.True(t, ok, "got %T", stmts[0])
	require.Len(t, ct.Options, 1)
	require.Len(t, ct.Options[0].Options, 2)

	key, ok := ct.Options[0].Options[0].Key.(*ast.CompoundIdentifier)
	require.True(t, ok, "got %T", ct.Options[0].Options[0].Key)
	require.Len(t, key.Parts, 2)
	assert.Equal(t, '`', key.Parts[0].QuoteStyle)
	assert.Equal(t, "appendOnly", key.Parts[1].Value)

	_, plain := ct.Options[0].Options[1].Key.(ast.Ident)
	assert.True(t, plain)

	roundTrip(t, databricks.Databricks, sql)
}

func TestIntegerLiteralOverflow(t *testing.T) {
	tests := []struct {
		src   string
		valid bool
	}{
		{"VARCHAR(18446744073709551615)", true},
		{"VARCHAR(18446744073709551616)", false},
		{"DECIMAL(99999999999999999999999, 2)", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p, err := parser.New(generic.Generic).TryWithSQL(tt.src)
			require.NoError(t, err)
			_, err = p.ParseDataType()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var pe *parser.ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, parser.Expected, pe.Kind)
		})
	}
}

func TestTrailingCommasOption(t *testing.T) {
	sql := "SELECT a, b, FROM t"
	_, err := parser.Parse(ansi.ANSI, sql)
	require.Error(t, err)

	opts := parser.DefaultOptions(ansi.ANSI)
	opts.TrailingCommas = true
	stmts, err := parser.New(ansi.ANSI).WithOptions(opts).ParseSQL(sql)
	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b FROM t", stmts[0].String())
}

func TestSemicolonDelimiterOption(t *testing.T) {
	sql := "SELECT 1 SELECT 2"
	opts := parser.DefaultOptions(generic.Generic)
	opts.RequireSemicolonStatementDelimiter = false
	stmts, err := parser.New(generic.Generic).WithOptions(opts).ParseSQL(sql)
	require.NoError(t, err)
	assert.Len(t, stmts, 2)
}

func TestUnescapeOption(t *testing.T) {
	opts := parser.DefaultOptions(generic.Generic)
	opts.Unescape = false
	stmts, err := parser.New(generic.Generic).WithOptions(opts).ParseSQL("SELECT 'a''b'")
	require.NoError(t, err)
	lit := stmts[0].(*ast.Query).Body.(*ast.Select).Projection[0].(*ast.UnnamedExpr).Expr.(*ast.ValueWithSpan)
	assert.Equal(t, "a''b", lit.Value.Text)
}

// ---------- API Tests ----------

func TestParseRequiresNoDialectState(t *testing.T) {
	p := parser.New(postgres.Postgres)
	assert.Same(t, postgres.Postgres, p.Dialect())

	for _, sql := range []string{"SELECT 1", "SELECT 2"} {
		stmts, err := p.ParseSQL(sql)
		require.NoError(t, err)
		assert.Equal(t, sql, stmts[0].String(), "a parser can be reused")
	}
}

func TestWithTokens(t *testing.T) {
	toks, err := parser.NewTokenizer(generic.Generic, "SELECT /* c */ a FROM t").WithTrivia(true).Tokenize()
	require.NoError(t, err)

	stmts, err := parser.New(generic.Generic).WithTokens(toks).ParseStatements()
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t", stmts[0].String())

	// without EOF
	stmts, err = parser.New(generic.Generic).WithTokens(toks[:len(toks)-1]).ParseStatements()
	require.NoError(t, err)
	assert.Len(t, stmts, 1)
}

func TestEntryPoints(t *testing.T) {
	p, err := parser.New(duckdb.DuckDB).TryWithSQL("FROM t SELECT a WHERE b")
	require.NoError(t, err)
	sel, err := p.ParseSelect()
	require.NoError(t, err)
	assert.True(t, sel.FromFirst)
	assert.Equal(t, "FROM t SELECT a WHERE b", sel.String())

	p, err = parser.New(generic.Generic).TryWithSQL("a * (b + 1)")
	require.NoError(t, err)
	expr, err := p.ParseExpr()
	require.NoError(t, err)
	assert.Equal(t, "a * (b + 1)", expr.String())

	p, err = parser.New(generic.Generic).TryWithSQL("varchar(10)")
	require.NoError(t, err)
	dt, err := p.ParseDataType()
	require.NoError(t, err)
	assert.Equal(t, "VARCHAR(10)", dt.String())
}

func TestTryWithSQLLexError(t *testing.T) {
	_, err := parser.New(generic.Generic).TryWithSQL("SELECT 'x")
	require.Error(t, err)
	var pe *parser.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, parser.Lex, pe.Kind)
}

func TestParseContext(t *testing.T) {
	stmts, err := parser.ParseContext(context.Background(), generic.Generic, "SELECT 1; SELECT 2")
	require.NoError(t, err)
	assert.Len(t, stmts, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = parser.ParseContext(ctx, generic.Generic, "SELECT 1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParserDoesNotMutateInput(t *testing.T) {
	src := "SELECT a FROM t WHERE b = 'x'"
	before := strings.Clone(src)
	_, err := parser.Parse(generic.Generic, src)
	require.NoError(t, err)
	assert.Equal(t, before, src)
}

func TestStatementSpansWithinSource(t *testing.T) {
	src := "SELECT a FROM t;\nINSERT INTO t VALUES (1);\nUPDATE t SET a = 2 WHERE a = 1"
	stmts, err := parser.Parse(generic.Generic, src)
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	for i, s := range stmts {
		sp := ast.Span(s)
		require.True(t, sp.IsValid(), "statement %d", i)
		assert.False(t, sp.End.Before(sp.Start))
		assert.LessOrEqual(t, sp.End.Offset, len(src))
		assert.Equal(t, i+1, sp.Start.Line)
	}
	assert.True(t, strings.HasPrefix(src[ast.Span(stmts[1]).Start.Offset:], "INSERT INTO t"))
}
