// Package databricks provides the Databricks SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package databricks

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the Databricks SQL dialect configuration.
// This is pure data; hooks are attached in dialect.go.
var Config = dialect.Config{
	Name:             "databricks",
	IdentifierQuotes: "`",
	Normalization:    dialect.NormCaseInsensitive,

	DoubleQuotedStrings:    true,
	BackslashEscape:        true,
	RawStrings:             true,
	NumericLiteralSuffixes: true, // 10L, 1.5D, 2BD

	DoubleColonCast:         true,
	Lambdas:                 true,
	StructLiteral:           true,
	ILike:                   true,
	RLike:                   true,
	FilterDuringAggregation: true,
	NamedArgsRArrow:         true,

	WildcardExcept: true,

	Qualify:                 true,
	GroupByExpr:             true,
	GroupByAll:              true,
	LateralView:             true,
	ClusterDistributeSortBy: true,
	MinusSetOperator:        true,

	SemiAntiJoins: true,

	// Databricks does NOT support these:
	// - ORDER BY ALL
	// - RETURNING
}
