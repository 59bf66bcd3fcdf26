// Package hive provides the Apache Hive SQL dialect definition.
package hive

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the Hive dialect configuration.
var Config = dialect.Config{
	Name:             "hive",
	IdentifierQuotes: "`",
	Normalization:    dialect.NormCaseInsensitive,

	DoubleQuotedStrings:    true,
	BackslashEscape:        true,
	NumericLiteralSuffixes: true, // 10L, 10Y, 10S, 1.5BD

	RLike: true,

	GroupByExpr:             true,
	GroupByWithModifier:     true,
	LateralView:             true,
	ClusterDistributeSortBy: true,
	LimitComma:              true,

	SemiAntiJoins: true, // LEFT SEMI JOIN
}
