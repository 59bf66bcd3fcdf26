// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the PostgreSQL dialect configuration.
// This is pure data; hooks are attached in dialect.go.
var Config = dialect.Config{
	Name:             "postgres",
	IdentifierQuotes: `"`,
	Normalization:    dialect.NormLowercase, // unquoted names fold to lowercase

	UnicodeEscape:       true,
	EscapeStrings:       true,
	DollarQuotedStrings: true,
	NestedComments:      true,
	NumberUnderscores:   true,

	DoubleColonCast:         true,
	ILike:                   true,
	FilterDuringAggregation: true,
	WithinGroup:             true,
	NamedArgsRArrow:         true,
	NamedArgsAssignment:     true,
	NamedArgsValue:          true,

	DistinctOn:                       true,
	SelectInto:                       true,
	WindowClauseNamedWindowReference: true,
	GroupByExpr:                      true,
	LockClauses:                      true,

	OnConflict:  true,
	Returning:   true,
	UpdateFrom:  true,
	DeleteUsing: true,

	// PostgreSQL does NOT support these:
	// - QUALIFY
	// - GROUP BY ALL / ORDER BY ALL
	// - SEMI/ANTI joins
	// - BEGIN ... END blocks outside function bodies
}
