package duckdb

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the DuckDB dialect configuration.
// This is pure data; hooks are attached in dialect.go.
var Config = dialect.Config{
	Name:             "duckdb",
	IdentifierQuotes: `"`,
	Normalization:    dialect.NormCaseInsensitive,

	DollarQuotedStrings: true,
	NestedComments:      true,
	NumberUnderscores:   true,

	DoubleColonCast:         true,
	Lambdas:                 true,
	LambdaKeyword:           true,
	StructLiteral:           true,
	BracketArrays:           true,
	ILike:                   true,
	FilterDuringAggregation: true,
	WithinGroup:             true,
	NamedArgsAssignment:     true,
	NamedArgsRArrow:         true,

	WildcardExclude:          true,
	WildcardReplace:          true,
	WildcardRename:           true,
	DistinctOn:               true,
	ProjectionTrailingCommas: true,

	FromFirstSelect:   true,
	Qualify:           true,
	GroupByExpr:       true,
	GroupByAll:        true,
	OrderByAll:        true,
	SetOperatorByName: true,

	SemiAntiJoins: true,
	AsOfJoins:     true,

	InsertOr:   true,
	OnConflict: true,
	Returning:  true,
	UpdateFrom: true,
	DeleteUsing: true,
}
