// Package spark provides the Apache Spark SQL dialect definition.
package spark

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the Spark SQL dialect configuration.
var Config = dialect.Config{
	Name:             "spark",
	IdentifierQuotes: "`",
	Normalization:    dialect.NormCaseInsensitive,

	DoubleQuotedStrings:    true,
	BackslashEscape:        true,
	RawStrings:             true,
	NumericLiteralSuffixes: true,

	Lambdas:                 true,
	StructLiteral:           true,
	ILike:                   true,
	RLike:                   true,
	FilterDuringAggregation: true,
	NamedArgsRArrow:         true,

	GroupByExpr:             true,
	GroupByWithModifier:     true,
	LateralView:             true,
	ClusterDistributeSortBy: true,
	MinusSetOperator:        true,

	SemiAntiJoins: true,
}
