// Package snowflake provides the Snowflake SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package snowflake

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the Snowflake SQL dialect configuration.
// This is pure data; hooks are attached in dialect.go.
var Config = dialect.Config{
	Name:             "snowflake",
	IdentifierQuotes: `"`,
	Normalization:    dialect.NormUppercase, // Snowflake normalizes to uppercase

	BackslashEscape:     true,
	DollarQuotedStrings: true,
	AtPlaceholders:      true, // @stage references

	DoubleColonCast: true,
	ILike:           true,
	RLike:           true,
	WithinGroup:     true,
	NamedArgsRArrow: true,
	OuterJoinPlus:   true,

	WildcardExclude: true,
	WildcardReplace: true,
	WildcardRename:  true,
	WildcardIlike:   true,
	Top:             true,

	Qualify:                          true,
	ConnectBy:                        true,
	MatchRecognize:                   true,
	WindowClauseNamedWindowReference: true,
	GroupByExpr:                      true,
	GroupByAll:                       true,
	MinusSetOperator:                 true,

	TableVersioning: true, // AT(...) / BEFORE(...)
	AsOfJoins:       true,

	UpdateFrom:  true,
	DeleteUsing: true,

	BeginEndBlock:   true, // Snowflake Scripting
	ExceptionBlocks: true,

	// Snowflake does NOT support these:
	// - ORDER BY ALL
	// - SEMI/ANTI joins (as keywords - they use different syntax)
}
