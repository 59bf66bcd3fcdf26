package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
)

func TestNormalizationStrategyString(t *testing.T) {
	tests := []struct {
		norm NormalizationStrategy
		want string
	}{
		{NormLowercase, "lowercase"},
		{NormUppercase, "uppercase"},
		{NormCaseSensitive, "case-sensitive"},
		{NormCaseInsensitive, "case-insensitive"},
		{NormalizationStrategy(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.norm.String())
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		norm NormalizationStrategy
		in   string
		want string
	}{
		{NormLowercase, "Users", "users"},
		{NormUppercase, "Users", "USERS"},
		{NormCaseSensitive, "Users", "Users"},
		{NormCaseInsensitive, "Users", "users"},
	}

	for _, tt := range tests {
		t.Run(tt.norm.String(), func(t *testing.T) {
			d := New(Config{Name: "test", Normalization: tt.norm}).Build()
			assert.Equal(t, tt.want, d.NormalizeName(tt.in))
		})
	}
}

func TestEqualIdents(t *testing.T) {
	lower := New(Config{Name: "lower", Normalization: NormLowercase}).Build()
	sensitive := New(Config{Name: "sensitive", Normalization: NormCaseSensitive}).Build()
	insensitive := New(Config{Name: "insensitive", Normalization: NormCaseInsensitive}).Build()

	tests := []struct {
		name string
		d    *Dialect
		a, b ast.Ident
		want bool
	}{
		{"unquoted fold", lower, ast.NewIdent("Foo"), ast.NewIdent("FOO"), true},
		{"quoted exact", lower, ast.QuotedIdent("Foo", '"'), ast.QuotedIdent("foo", '"'), false},
		{"quoted matches folded", lower, ast.QuotedIdent("foo", '"'), ast.NewIdent("FOO"), true},
		{"quoted keeps case", lower, ast.QuotedIdent("Foo", '"'), ast.NewIdent("Foo"), false},
		{"symmetric", lower, ast.NewIdent("FOO"), ast.QuotedIdent("foo", '"'), true},
		{"case sensitive", sensitive, ast.NewIdent("Foo"), ast.NewIdent("foo"), false},
		{"case insensitive quoted", insensitive, ast.QuotedIdent("Foo", '`'), ast.NewIdent("foo"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.EqualIdents(tt.a, tt.b))
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	pg := New(Config{Name: "pg", IdentifierQuotes: `"`, Normalization: NormLowercase}).Build()
	my := New(Config{Name: "my", IdentifierQuotes: "`"}).Build()
	ms := New(Config{Name: "ms", IdentifierQuotes: `"[`}).QuoteStyle(Bracket).Build()

	assert.Equal(t, `"a""b"`, pg.QuoteIdentifier(`a"b`))
	assert.Equal(t, "`x`", my.QuoteIdentifier("x"))
	assert.Equal(t, "[x y]", ms.QuoteIdentifier("x y"))

	assert.Equal(t, "users", pg.QuoteIdentifierIfNeeded("users"))
	assert.Equal(t, `"Users"`, pg.QuoteIdentifierIfNeeded("Users"))
	assert.Equal(t, `"select"`, pg.QuoteIdentifierIfNeeded("select"))
	assert.Equal(t, `"my col"`, pg.QuoteIdentifierIfNeeded("my col"))
}

func TestReservations(t *testing.T) {
	d := New(Config{Name: "test"}).
		UnreserveTableAlias(keyword.WINDOW).
		ReserveColumnAlias(keyword.MATCH_RECOGNIZE).
		Build()

	assert.True(t, d.IsTableAlias(keyword.WINDOW, nil))
	assert.False(t, d.IsTableAlias(keyword.JOIN, nil))
	assert.False(t, d.IsColumnAlias(keyword.MATCH_RECOGNIZE, nil))
	assert.True(t, d.IsColumnAlias(keyword.NoKeyword, nil))

	// The package-level defaults are untouched.
	assert.True(t, keyword.ReservedForTableAlias.Contains(keyword.WINDOW))
}

func TestIdentifierHooks(t *testing.T) {
	std := New(Config{Name: "std", IdentifierQuotes: `"`}).Build()
	assert.True(t, std.IsIdentifierStart('a'))
	assert.False(t, std.IsIdentifierStart('$'))
	assert.False(t, std.IsIdentifierPart('$'))
	assert.True(t, std.IsDelimitedIdentifierStart('"'))
	assert.False(t, std.IsDelimitedIdentifierStart('`'))
	assert.False(t, std.IsCustomOperatorPart('@'))

	custom := New(Config{Name: "custom"}).
		Identifiers(ASCIIIdentifierStart, DollarIdentifierPart).
		CustomOperatorChars(PostgresOperatorPart).
		Build()
	assert.False(t, custom.IsIdentifierStart('é'))
	assert.True(t, custom.IsIdentifierPart('$'))
	assert.True(t, custom.IsCustomOperatorPart('@'))
}

func TestRegistry(t *testing.T) {
	d := New(Config{Name: "RegistryTest"}).Build()
	Register(d, "registry-alias")

	got, ok := Get("registrytest")
	require.True(t, ok)
	assert.Same(t, d, got)

	got, ok = Get("REGISTRY-ALIAS")
	require.True(t, ok)
	assert.Same(t, d, got)

	assert.Contains(t, List(), "registrytest")

	_, err := Lookup("")
	require.ErrorIs(t, err, ErrDialectRequired)
	_, err = Lookup("nope")
	require.ErrorIs(t, err, ErrUnknownDialect)
}

func TestHooksDefaultToUnhandled(t *testing.T) {
	d := New(Config{Name: "nohooks"}).Build()

	stmt, handled, err := d.ParseStatement(nil)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Nil(t, stmt)

	_, ok := d.NextPrecedence(nil)
	assert.False(t, ok)
}
