// Package dialect provides the SQL dialect capability object.
//
// A Dialect bundles pure feature flags (Config) with behaviour hooks that
// receive spi.ParserOps. The parser consults it at every point where the
// grammar varies between engines. Concrete dialects are registered from
// pkg/dialects/*/ packages.
package dialect

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
)

// Dialect represents a SQL dialect. It is immutable once built and safe to
// share between goroutines.
type Dialect struct {
	Config

	// Keyword reservations
	reservedTableAlias  keyword.Set
	reservedColumnAlias keyword.Set
	reservedIdentifier  keyword.Set
	reservedTableFactor keyword.Set

	// Parsing hooks; nil means the standard behaviour
	statementHook  spi.StatementHook
	prefixHook     spi.PrefixHook
	infixHook      spi.InfixHook
	precedenceHook spi.PrecedenceHook
	columnAlias    spi.AliasHook
	tableAlias     spi.AliasHook

	// Lexical hooks
	identStart      func(r rune) bool
	identPart       func(r rune) bool
	delimitedStart  func(r rune) bool
	properInQuotes  func(rest []rune) bool
	quoteStyle      func(name string) rune
	customOperator  func(r rune) bool
	customOperators []string
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return d.Config.Name
}

// String returns the dialect name.
func (d *Dialect) String() string {
	return d.Config.Name
}

// ---------- Lexical Behavior Methods ----------

// IsIdentifierStart reports whether r can start an unquoted identifier.
func (d *Dialect) IsIdentifierStart(r rune) bool {
	if d.identStart != nil {
		return d.identStart(r)
	}
	return StandardIdentifierStart(r)
}

// IsIdentifierPart reports whether r can continue an unquoted identifier.
func (d *Dialect) IsIdentifierPart(r rune) bool {
	if d.identPart != nil {
		return d.identPart(r)
	}
	return StandardIdentifierPart(r)
}

// IsDelimitedIdentifierStart reports whether r opens a quoted identifier.
func (d *Dialect) IsDelimitedIdentifierStart(r rune) bool {
	if d.delimitedStart != nil {
		return d.delimitedStart(r)
	}
	return strings.ContainsRune(d.IdentifierQuotes, r)
}

// IsProperIdentifierInsideQuotes is asked, for dialects where a quote
// character is overloaded, whether the text after the opening quote forms
// an identifier. rest starts right after the quote.
func (d *Dialect) IsProperIdentifierInsideQuotes(rest []rune) bool {
	if d.properInQuotes != nil {
		return d.properInQuotes(rest)
	}
	return true
}

// IdentifierQuoteStyle returns the quote to use when rendering name as a
// delimited identifier, or 0 when the dialect has no preference.
func (d *Dialect) IdentifierQuoteStyle(name string) rune {
	if d.quoteStyle != nil {
		return d.quoteStyle(name)
	}
	if d.IdentifierQuotes == "" {
		return 0
	}
	return []rune(d.IdentifierQuotes)[0]
}

// IsCustomOperatorPart reports whether r may appear in a user-defined
// operator such as PostgreSQL's @-@ or <->.
func (d *Dialect) IsCustomOperatorPart(r rune) bool {
	if d.customOperator != nil {
		return d.customOperator(r)
	}
	return false
}

// CustomOperators lists extra multi-character operators the tokenizer must
// recognise as single tokens.
func (d *Dialect) CustomOperators() []string {
	return d.customOperators
}

// ---------- Parsing Behavior Methods ----------

// ParseStatement runs the dialect statement hook.
func (d *Dialect) ParseStatement(p spi.ParserOps) (ast.Statement, bool, error) {
	if d.statementHook == nil {
		return nil, false, nil
	}
	return d.statementHook(p)
}

// ParsePrefix runs the dialect prefix expression hook.
func (d *Dialect) ParsePrefix(p spi.ParserOps) (ast.Expr, bool, error) {
	if d.prefixHook == nil {
		return nil, false, nil
	}
	return d.prefixHook(p)
}

// ParseInfix runs the dialect infix expression hook.
func (d *Dialect) ParseInfix(p spi.ParserOps, left ast.Expr, prec int) (ast.Expr, bool, error) {
	if d.infixHook == nil {
		return nil, false, nil
	}
	return d.infixHook(p, left, prec)
}

// NextPrecedence asks the dialect for the precedence of the next token.
// ok is false when the standard table applies.
func (d *Dialect) NextPrecedence(p spi.ParserOps) (int, bool) {
	if d.precedenceHook == nil {
		return 0, false
	}
	return d.precedenceHook(p)
}

// IsColumnAlias reports whether kw may act as an implicit column alias.
func (d *Dialect) IsColumnAlias(kw keyword.Keyword, p spi.ParserOps) bool {
	if d.columnAlias != nil {
		return d.columnAlias(kw, p)
	}
	return !d.reservedColumnAlias.Contains(kw)
}

// IsTableAlias reports whether kw may act as an implicit table alias.
func (d *Dialect) IsTableAlias(kw keyword.Keyword, p spi.ParserOps) bool {
	if d.tableAlias != nil {
		return d.tableAlias(kw, p)
	}
	return !d.reservedTableAlias.Contains(kw)
}

// IsReservedForIdentifier reports whether kw introduces a special form and
// cannot be read as a bare column name.
func (d *Dialect) IsReservedForIdentifier(kw keyword.Keyword) bool {
	return d.reservedIdentifier.Contains(kw)
}

// IsReservedForTableFactor reports whether kw can never start a table
// factor.
func (d *Dialect) IsReservedForTableFactor(kw keyword.Keyword) bool {
	return d.reservedTableFactor.Contains(kw)
}

// ReservedForColumnAlias returns the column alias reservation set.
func (d *Dialect) ReservedForColumnAlias() keyword.Set {
	return d.reservedColumnAlias
}

// ReservedForTableAlias returns the table alias reservation set.
func (d *Dialect) ReservedForTableAlias() keyword.Set {
	return d.reservedTableAlias
}

// ---------- Identifier Methods ----------

// NormalizeName normalizes an unquoted identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Normalization {
	case NormUppercase:
		return cases.Upper(language.Und).String(name)
	case NormLowercase:
		return cases.Lower(language.Und).String(name)
	case NormCaseInsensitive:
		return cases.Fold().String(name)
	default:
		return name
	}
}

// EqualIdents compares two identifiers the way the engine resolves them:
// quoted identifiers are exact, unquoted ones follow Normalization. A quoted
// and an unquoted identifier match when the unquoted one normalizes to the
// quoted spelling.
func (d *Dialect) EqualIdents(a, b ast.Ident) bool {
	switch {
	case a.QuoteStyle != 0 && b.QuoteStyle != 0:
		return a.Value == b.Value
	case a.QuoteStyle != 0:
		return a.Value == d.NormalizeName(b.Value) || d.Normalization == NormCaseInsensitive && d.NormalizeName(a.Value) == d.NormalizeName(b.Value)
	case b.QuoteStyle != 0:
		return d.EqualIdents(b, a)
	}
	return d.NormalizeName(a.Value) == d.NormalizeName(b.Value)
}

// QuoteIdentifier renders name as a delimited identifier in the dialect's
// preferred quote style.
func (d *Dialect) QuoteIdentifier(name string) string {
	q := d.IdentifierQuoteStyle(name)
	if q == 0 {
		q = '"'
	}
	return ast.QuotedIdent(name, q).String()
}

// QuoteIdentifierIfNeeded quotes name only when it would not survive as a
// bare identifier: reserved words, names with special characters and names
// whose case the dialect would fold.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if name == "" {
		return d.QuoteIdentifier(name)
	}
	for i, r := range name {
		if i == 0 && !d.IsIdentifierStart(r) || !d.IsIdentifierPart(r) {
			return d.QuoteIdentifier(name)
		}
	}
	if kw, ok := keyword.Lookup(name); ok && (d.reservedColumnAlias.Contains(kw) || d.reservedTableFactor.Contains(kw)) {
		return d.QuoteIdentifier(name)
	}
	if d.Normalization != NormCaseSensitive && d.Normalization != NormCaseInsensitive && d.NormalizeName(name) != name {
		return d.QuoteIdentifier(name)
	}
	return name
}
