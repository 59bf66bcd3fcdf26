// Package ansi provides the ANSI SQL dialect: the SQL:2016 core with
// its optional features, and no vendor extensions.
//
// Every Config flag left false here is a vendor extension. Other dialects
// do not inherit from ANSI; each declares its own Config.
package ansi

import (
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
)

func init() {
	dialect.Register(ANSI, "standard")
}

// Config is the ANSI SQL dialect configuration.
var Config = dialect.Config{
	Name:             "ansi",
	IdentifierQuotes: `"`,
	Normalization:    dialect.NormUppercase, // the standard folds to uppercase

	UnicodeEscape:  true,
	NestedComments: true,

	FilterDuringAggregation: true,
	WithinGroup:             true,
	NamedArgsRArrow:         true,
	NamedArgsValue:          true, // JSON_OBJECT(k VALUE v)

	MatchRecognize:                   true,
	WindowClauseNamedWindowReference: true,
	GroupByExpr:                      true,

	TableVersioning: true, // FOR SYSTEM_TIME AS OF

	BeginEndBlock: true, // SQL/PSM compound statements
}

// ANSI is the standard SQL dialect with the default reservations and
// identifier rules.
var ANSI = dialect.New(Config).
	QuoteStyle(dialect.DoubleQuote).
	Identifiers(dialect.ASCIIIdentifierStart, dialect.ASCIIIdentifierPart).
	Build()
