package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/bigquery"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/generic"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqlkit/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/parser"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// lex tokenizes src and drops the trailing EOF.
func lex(t *testing.T, d *dialect.Dialect, src string) []token.TokenWithSpan {
	t.Helper()
	toks, err := parser.Tokenize(d, src)
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	require.Equal(t, token.EOF, toks[len(toks)-1].Type, "stream must end with EOF")
	return toks[:len(toks)-1]
}

func types(toks []token.TokenWithSpan) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

// ---------- Word Tests ----------

func TestTokenizeWords(t *testing.T) {
	toks := lex(t, generic.Generic, `select Foo, "Bar Baz", `+"`q`")
	require.Len(t, toks, 6)

	assert.Equal(t, keyword.SELECT, toks[0].Keyword)
	assert.Equal(t, "select", toks[0].Value, "keywords keep their spelling")

	assert.Equal(t, "Foo", toks[1].Value)
	assert.Equal(t, keyword.NoKeyword, toks[1].Keyword)

	assert.Equal(t, "Bar Baz", toks[3].Value)
	assert.Equal(t, '"', toks[3].Quote)
	assert.Equal(t, keyword.NoKeyword, toks[3].Keyword, "quoted words are never keywords")

	assert.Equal(t, "q", toks[5].Value)
	assert.Equal(t, '`', toks[5].Quote)
}

func TestTokenizeQuotedIdentifierEscapes(t *testing.T) {
	toks := lex(t, postgres.Postgres, `"a""b"`)
	require.Len(t, toks, 1)
	assert.Equal(t, `a"b`, toks[0].Value)

	toks = lex(t, mssql.MsSQL, `[a]]`)
	require.Len(t, toks, 2, "brackets have no internal escape")
	assert.Equal(t, "a", toks[0].Value)
	assert.Equal(t, '[', toks[0].Quote)
}

func TestTokenizeKeywordCaseInsensitive(t *testing.T) {
	for _, src := range []string{"SELECT", "select", "SeLeCt"} {
		toks := lex(t, generic.Generic, src)
		assert.Equal(t, keyword.SELECT, toks[0].Keyword, src)
	}
}

// ---------- String Tests ----------

func TestTokenizeStrings(t *testing.T) {
	tests := []struct {
		name  string
		d     *dialect.Dialect
		src   string
		value string
		style token.StringStyle
	}{
		{"single", generic.Generic, `'it''s'`, "it's", token.SingleQuoted},
		{"national", generic.Generic, `N'abc'`, "abc", token.National},
		{"hex", generic.Generic, `X'1F'`, "1F", token.Hex},
		{"escape", postgres.Postgres, `E'a\nb'`, "a\nb", token.Escaped},
		{"escape hex", postgres.Postgres, `E'\x41'`, "A", token.Escaped},
		{"escape plain", postgres.Postgres, `E'é'`, "é", token.Escaped},
		{"dollar", postgres.Postgres, `$$it's$$`, "it's", token.DollarQuoted},
		{"mysql backslash", mysql.MySQL, `'a\'b'`, "a'b", token.SingleQuoted},
		{"mysql double quoted", mysql.MySQL, `"abc"`, "abc", token.DoubleQuoted},
		{"bigquery triple", bigquery.BigQuery, `'''a'b'''`, "a'b", token.TripleSingleQuoted},
		{"ansi no backslash", ansi.ANSI, `'a\'`, `a\`, token.SingleQuoted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lex(t, tt.d, tt.src)
			require.Len(t, toks, 1)
			assert.Equal(t, token.STRING, toks[0].Type)
			assert.Equal(t, tt.value, toks[0].Value)
			assert.Equal(t, tt.style, toks[0].Style)
		})
	}
}

func TestTokenizeBackslashFlag(t *testing.T) {
	tests := []struct {
		name string
		d    *dialect.Dialect
		src  string
		want bool
	}{
		{"mysql single", mysql.MySQL, `'c\\d'`, true},
		{"mysql double", mysql.MySQL, `"c"`, true},
		{"bigquery", bigquery.BigQuery, `'x'`, true},
		{"postgres", postgres.Postgres, `'c\d'`, false},
		{"postgres escape string", postgres.Postgres, `E'c\\d'`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lex(t, tt.d, tt.src)
			require.Len(t, toks, 1)
			assert.Equal(t, tt.want, toks[0].Backslash)
		})
	}

	toks := lex(t, mysql.MySQL, `'c\\d'`)
	assert.Equal(t, `c\d`, toks[0].Value)
	assert.Equal(t, `'c\\d'`, toks[0].String())
}

func TestTokenizeDollarTag(t *testing.T) {
	toks := lex(t, postgres.Postgres, `$fn$ SELECT $$x$$ $fn$`)
	require.Len(t, toks, 1)
	assert.Equal(t, "fn", toks[0].Tag)
	assert.Equal(t, " SELECT $$x$$ ", toks[0].Value)
}

func TestTokenizeWithoutUnescape(t *testing.T) {
	toks, err := parser.NewTokenizer(generic.Generic, `'it''s'`).WithUnescape(false).Tokenize()
	require.NoError(t, err)
	assert.Equal(t, "it''s", toks[0].Value)
}

// ---------- Number Tests ----------

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{".5", ".5"},
		{"1e10", "1e10"},
		{"2.5E-3", "2.5E-3"},
		{"0xFF", "0xFF"},
		{"1_000", "1_000"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lex(t, generic.Generic, tt.src)
			require.Len(t, toks, 1)
			assert.Equal(t, token.NUMBER, toks[0].Type)
			assert.Equal(t, tt.want, toks[0].Value)
		})
	}
}

func TestTokenizeNegativeIsOperator(t *testing.T) {
	toks := lex(t, generic.Generic, "-1")
	assert.Equal(t, []token.TokenType{token.MINUS, token.NUMBER}, types(toks))
}

func TestTokenizeQualifiedNumberField(t *testing.T) {
	toks := lex(t, generic.Generic, "t.1")
	assert.Equal(t, []token.TokenType{token.WORD, token.DOT, token.NUMBER}, types(toks))
}

func TestTokenizeLeadingDotAfterKeyword(t *testing.T) {
	tests := []struct {
		src  string
		want []token.TokenType
	}{
		{"SELECT .5", []token.TokenType{token.WORD, token.NUMBER}},
		{"WHERE a > .25", []token.TokenType{token.WORD, token.WORD, token.GT, token.NUMBER}},
		{`"t".1`, []token.TokenType{token.WORD, token.DOT, token.NUMBER}},
		{"(a).1", []token.TokenType{token.LPAREN, token.WORD, token.RPAREN, token.DOT, token.NUMBER}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, types(lex(t, postgres.Postgres, tt.src)))
		})
	}
}

// ---------- Operator and Placeholder Tests ----------

func TestTokenizeOperatorsLongestMatch(t *testing.T) {
	tests := []struct {
		src  string
		want []token.TokenType
	}{
		{"a<=>b", []token.TokenType{token.WORD, token.SPACESHIP, token.WORD}},
		{"a<>b", []token.TokenType{token.WORD, token.NE, token.WORD}},
		{"a!=b", []token.TokenType{token.WORD, token.NE, token.WORD}},
		{"a::int", []token.TokenType{token.WORD, token.DCOLON, token.WORD}},
		{"a->>'k'", []token.TokenType{token.WORD, token.LONGARROW, token.STRING}},
		{"a||b", []token.TokenType{token.WORD, token.DPIPE, token.WORD}},
		{"f(a => 1)", []token.TokenType{token.WORD, token.LPAREN, token.WORD, token.RARROW, token.NUMBER, token.RPAREN}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, types(lex(t, generic.Generic, tt.src)))
		})
	}
}

func TestTokenizePlaceholders(t *testing.T) {
	tests := []struct {
		d    *dialect.Dialect
		src  string
		want string
	}{
		{generic.Generic, "?", "?"},
		{generic.Generic, "$1", "$1"},
		{generic.Generic, "@p", "@p"},
		{postgres.Postgres, "$12", "$12"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lex(t, tt.d, "SELECT "+tt.src)
			last := toks[len(toks)-1]
			assert.Equal(t, token.PLACEHOLDER, last.Type)
			assert.Equal(t, tt.want, last.Value)
		})
	}
}

// ---------- Comment and Trivia Tests ----------

func TestTokenizeComments(t *testing.T) {
	src := "SELECT /* a /* nested */ b */ 1 -- tail\n"
	tz := parser.NewTokenizer(generic.Generic, src)
	toks, err := tz.Tokenize()
	require.NoError(t, err)

	assert.Equal(t, []token.TokenType{token.WORD, token.NUMBER, token.EOF}, types(toks))
	comments := tz.Comments()
	require.Len(t, comments, 2)
	assert.Equal(t, "/* a /* nested */ b */", comments[0].Text)
	assert.Equal(t, "-- tail\n", comments[1].Text)
}

func TestTokenizeHashComment(t *testing.T) {
	toks := lex(t, mysql.MySQL, "SELECT 1 # note")
	assert.Equal(t, []token.TokenType{token.WORD, token.NUMBER}, types(toks))
}

func TestTokenizeTrivia(t *testing.T) {
	src := "SELECT  1 -- c\n"
	toks, err := parser.NewTokenizer(generic.Generic, src).WithTrivia(true).Tokenize()
	require.NoError(t, err)
	assert.Equal(t, []token.TokenType{
		token.WORD, token.WHITESPACE, token.NUMBER, token.WHITESPACE, token.COMMENT, token.EOF,
	}, types(toks))

	var rebuilt string
	for _, tok := range toks[:len(toks)-1] {
		rebuilt += src[tok.Span.Start.Offset:tok.Span.End.Offset]
	}
	assert.Equal(t, src, rebuilt, "trivia spans tile the input")
}

// ---------- Span Tests ----------

func TestTokenSpans(t *testing.T) {
	toks := lex(t, generic.Generic, "SELECT a,\n  'é' FROM t")
	require.Len(t, toks, 6)

	assert.Equal(t, "(1,1)-(1,7)", toks[0].Span.String())
	assert.Equal(t, "(1,8)-(1,9)", toks[1].Span.String())
	assert.Equal(t, "(2,3)-(2,6)", toks[3].Span.String(), "columns count characters")
	assert.Equal(t, 12, toks[3].Span.Start.Offset)
	assert.Equal(t, 16, toks[3].Span.End.Offset, "offsets count bytes")
}

// ---------- Error Tests ----------

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name string
		d    *dialect.Dialect
		src  string
		kind parser.LexErrorKind
		loc  token.Location
		msg  string
	}{
		{
			name: "unterminated string",
			d:    generic.Generic, src: "SELECT 'abc",
			kind: parser.UnterminatedString,
			loc:  token.Location{Line: 1, Column: 8, Offset: 7},
			msg:  "unterminated string literal at line 1 column 8",
		},
		{
			name: "unterminated comment",
			d:    generic.Generic, src: "SELECT 1 /* x",
			kind: parser.UnterminatedComment,
			loc:  token.Location{Line: 1, Column: 10, Offset: 9},
		},
		{
			name: "unterminated identifier",
			d:    generic.Generic, src: "SELECT \"abc",
			kind: parser.UnterminatedQuotedIdentifier,
			loc:  token.Location{Line: 1, Column: 8, Offset: 7},
		},
		{
			name: "unterminated dollar",
			d:    postgres.Postgres, src: "SELECT\n$$abc",
			kind: parser.UnterminatedString,
			loc:  token.Location{Line: 2, Column: 1, Offset: 7},
		},
		{
			name: "bad escape",
			d:    postgres.Postgres, src: `SELECT E'\u12'`,
			kind: parser.InvalidEscape,
		},
		{
			name: "mysql has no dollar quoting",
			d:    mysql.MySQL, src: "SELECT $$hello$$",
			kind: parser.InvalidChar,
			loc:  token.Location{Line: 1, Column: 8, Offset: 7},
		},
		{
			name: "bad underscore",
			d:    generic.Generic, src: "SELECT 1__0",
			kind: parser.InvalidNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Tokenize(tt.d, tt.src)
			require.Error(t, err)
			var le *parser.LexError
			require.True(t, errors.As(err, &le), "got %T", err)
			assert.Equal(t, tt.kind, le.Kind)
			if tt.loc.IsValid() {
				assert.Equal(t, tt.loc, le.Location)
			}
			if tt.msg != "" {
				assert.Equal(t, tt.msg, le.Error())
			}
		})
	}
}

func TestLexErrorSurfacesThroughParser(t *testing.T) {
	_, err := parser.Parse(generic.Generic, "SELECT 'abc")
	require.Error(t, err)

	var pe *parser.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, parser.Lex, pe.Kind)

	var le *parser.LexError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, parser.UnterminatedString, le.Kind)
}
