// Package generic provides a permissive dialect that accepts the union of
// the other dialects' syntax wherever the grammars do not conflict.
package generic

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

func init() {
	dialect.Register(Generic, "default")
}

// Config is the generic dialect configuration.
var Config = dialect.Config{
	Name:             "generic",
	IdentifierQuotes: "\"`",
	Normalization:    dialect.NormCaseInsensitive,

	BackslashEscape:     true,
	UnicodeEscape:       true,
	EscapeStrings:       true,
	DollarQuotedStrings: true,
	NestedComments:      true,
	NumberUnderscores:   true,
	AtPlaceholders:      true,

	DoubleColonCast:         true,
	StructLiteral:           true,
	BracketArrays:           true,
	ILike:                   true,
	RLike:                   true,
	FilterDuringAggregation: true,
	WithinGroup:             true,
	NamedArgsExprName:       true,
	NamedArgsRArrow:         true,
	NamedArgsAssignment:     true,
	NamedArgsValue:          true,
	MatchAgainst:            true,

	WildcardExcept:  true,
	WildcardExclude: true,
	WildcardReplace: true,
	WildcardRename:  true,
	WildcardIlike:   true,
	DistinctOn:      true,
	Top:             true,
	SelectInto:      true,

	FromFirstSelect:                  true,
	Qualify:                          true,
	ConnectBy:                        true,
	MatchRecognize:                   true,
	WindowClauseNamedWindowReference: true,
	GroupByExpr:                      true,
	GroupByWithModifier:              true,
	GroupByAll:                       true,
	OrderByAll:                       true,
	LimitComma:                       true,
	LimitBy:                          true,
	LateralView:                      true,
	ClusterDistributeSortBy:          true,
	Prewhere:                         true,
	FinalModifier:                    true,
	Settings:                         true,
	FormatClause:                     true,
	SetOperatorByName:                true,
	MinusSetOperator:                 true,
	ForXMLJSON:                       true,
	LockClauses:                      true,
	WithFill:                         true,

	TableHints:         true,
	IndexHints:         true,
	TableVersioning:    true,
	PartitionSelection: true,
	SemiAntiJoins:      true,
	ApplyJoins:         true,
	AsOfJoins:          true,
	ArrayJoin:          true,
	StraightJoin:       true,

	InsertSet:      true,
	ReplaceInto:    true,
	InsertOr:       true,
	OnConflict:     true,
	OnDuplicateKey: true,
	Returning:      true,
	UpdateFrom:     true,
	DeleteUsing:    true,

	BeginEndBlock:   true,
	ExceptionBlocks: true,
}

// Generic is the permissive dialect used when none is named. It borrows
// the struct and map literals from DuckDB and PostgreSQL's custom
// operators.
var Generic = dialect.New(Config).
	Identifiers(dialect.StandardIdentifierStart, dialect.DollarIdentifierPart).
	CustomOperatorChars(dialect.PostgresOperatorPart).
	QuoteStyle(dialect.DoubleQuote).
	PrefixHook(parsePrefix).
	Build()

func parsePrefix(p spi.ParserOps) (ast.Expr, bool, error) {
	switch {
	case dialect.IsDictionaryStart(p):
		dict, err := dialect.ParseDictionary(p)
		return dict, true, err
	case p.PeekKeyword(keyword.MAP) && p.PeekNthToken(1).Type == token.LBRACE:
		m, err := dialect.ParseMapLiteral(p)
		return m, true, err
	}
	return nil, false, nil
}
