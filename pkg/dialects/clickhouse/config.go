// Package clickhouse provides the ClickHouse SQL dialect definition.
package clickhouse

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the ClickHouse dialect configuration.
var Config = dialect.Config{
	Name:             "clickhouse",
	IdentifierQuotes: "`\"",
	Normalization:    dialect.NormCaseSensitive, // names are case sensitive

	BackslashEscape:   true,
	NumberUnderscores: true,

	DoubleColonCast:      true,
	Lambdas:              true,
	BracketArrays:        true,
	ILike:                true,
	ParametricAggregates: true, // quantile(0.5)(x)

	WildcardExcept:  true,
	WildcardReplace: true,

	GroupByExpr:         true,
	GroupByWithModifier: true, // WITH TOTALS
	GroupByAll:          true,
	LimitComma:          true,
	LimitBy:             true,
	Prewhere:            true,
	FinalModifier:       true,
	Settings:            true,
	FormatClause:        true,
	WithFill:            true,

	SemiAntiJoins: true,
	AsOfJoins:     true,
	ArrayJoin:     true,
}
