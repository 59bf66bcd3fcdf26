package dialect

import (
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// New creates a dialect builder from a Config. Keyword reservations start
// from the standard sets.
func New(cfg Config) *Builder {
	return &Builder{
		dialect: &Dialect{
			Config:              cfg,
			reservedTableAlias:  keyword.ReservedForTableAlias,
			reservedColumnAlias: keyword.ReservedForColumnAlias,
			reservedIdentifier:  keyword.ReservedForIdentifier,
			reservedTableFactor: keyword.ReservedForTableFactor,
		},
	}
}

// ReserveTableAlias adds keywords that cannot be implicit table aliases.
func (b *Builder) ReserveTableAlias(kws ...keyword.Keyword) *Builder {
	b.dialect.reservedTableAlias = b.dialect.reservedTableAlias.With(kws...)
	return b
}

// UnreserveTableAlias allows keywords as implicit table aliases.
func (b *Builder) UnreserveTableAlias(kws ...keyword.Keyword) *Builder {
	b.dialect.reservedTableAlias = b.dialect.reservedTableAlias.Without(kws...)
	return b
}

// ReserveColumnAlias adds keywords that cannot be implicit column aliases.
func (b *Builder) ReserveColumnAlias(kws ...keyword.Keyword) *Builder {
	b.dialect.reservedColumnAlias = b.dialect.reservedColumnAlias.With(kws...)
	return b
}

// UnreserveColumnAlias allows keywords as implicit column aliases.
func (b *Builder) UnreserveColumnAlias(kws ...keyword.Keyword) *Builder {
	b.dialect.reservedColumnAlias = b.dialect.reservedColumnAlias.Without(kws...)
	return b
}

// ReserveIdentifier marks keywords that never parse as a bare column name.
func (b *Builder) ReserveIdentifier(kws ...keyword.Keyword) *Builder {
	b.dialect.reservedIdentifier = b.dialect.reservedIdentifier.With(kws...)
	return b
}

// ReserveTableFactor marks keywords that never start a table factor.
func (b *Builder) ReserveTableFactor(kws ...keyword.Keyword) *Builder {
	b.dialect.reservedTableFactor = b.dialect.reservedTableFactor.With(kws...)
	return b
}

// StatementHook installs a pre-dispatch statement parser.
func (b *Builder) StatementHook(h spi.StatementHook) *Builder {
	b.dialect.statementHook = h
	return b
}

// PrefixHook installs a prefix expression parser.
func (b *Builder) PrefixHook(h spi.PrefixHook) *Builder {
	b.dialect.prefixHook = h
	return b
}

// InfixHook installs an infix expression parser. It is only consulted for
// operators the PrecedenceHook reported.
func (b *Builder) InfixHook(h spi.InfixHook) *Builder {
	b.dialect.infixHook = h
	return b
}

// PrecedenceHook installs a precedence override.
func (b *Builder) PrecedenceHook(h spi.PrecedenceHook) *Builder {
	b.dialect.precedenceHook = h
	return b
}

// ColumnAlias overrides the implicit column alias predicate.
func (b *Builder) ColumnAlias(h spi.AliasHook) *Builder {
	b.dialect.columnAlias = h
	return b
}

// TableAlias overrides the implicit table alias predicate.
func (b *Builder) TableAlias(h spi.AliasHook) *Builder {
	b.dialect.tableAlias = h
	return b
}

// Identifiers overrides the unquoted identifier character classes.
func (b *Builder) Identifiers(start, part func(r rune) bool) *Builder {
	b.dialect.identStart = start
	b.dialect.identPart = part
	return b
}

// DelimitedIdentifiers overrides which characters open a quoted
// identifier, and optionally how to decide whether an overloaded quote
// really starts one.
func (b *Builder) DelimitedIdentifiers(start func(r rune) bool, proper func(rest []rune) bool) *Builder {
	b.dialect.delimitedStart = start
	b.dialect.properInQuotes = proper
	return b
}

// QuoteStyle overrides the quote used when rendering identifiers.
func (b *Builder) QuoteStyle(f func(name string) rune) *Builder {
	b.dialect.quoteStyle = f
	return b
}

// CustomOperatorChars sets the characters user-defined operators are built
// from.
func (b *Builder) CustomOperatorChars(f func(r rune) bool) *Builder {
	b.dialect.customOperator = f
	return b
}

// AddOperator registers an extra operator symbol. The tokenizer emits it
// as a dynamic token type.
func (b *Builder) AddOperator(symbol string) *Builder {
	token.Register(symbol)
	b.dialect.customOperators = append(b.dialect.customOperators, symbol)
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}
