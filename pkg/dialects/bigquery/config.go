// Package bigquery provides the Google BigQuery (GoogleSQL) dialect definition.
package bigquery

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the BigQuery dialect configuration.
var Config = dialect.Config{
	Name:             "bigquery",
	IdentifierQuotes: "`",
	Normalization:    dialect.NormCaseInsensitive,

	DoubleQuotedStrings: true,
	BackslashEscape:     true,
	TripleQuotedStrings: true,
	RawStrings:          true,
	ByteStrings:         true,
	HashComments:        true,
	AtPlaceholders:      true, // @param

	StructLiteral:   true,
	BracketArrays:   true,
	NamedArgsRArrow: true,

	WildcardExcept:           true,
	WildcardReplace:          true,
	ProjectionTrailingCommas: true,

	Qualify:                          true,
	WindowClauseNamedWindowReference: true,
	GroupByExpr:                      true,
	GroupByAll:                       true,

	TableVersioning: true, // FOR SYSTEM_TIME AS OF

	BeginEndBlock:   true,
	ExceptionBlocks: true, // EXCEPTION WHEN ERROR THEN
}
