// Package mysql provides the MySQL SQL dialect definition.
package mysql

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the MySQL dialect configuration.
var Config = dialect.Config{
	Name:             "mysql",
	IdentifierQuotes: "`",
	Normalization:    dialect.NormCaseInsensitive,

	DoubleQuotedStrings: true, // unless ANSI_QUOTES is set
	BackslashEscape:     true,
	HashComments:        true,

	RLike:        true,
	MatchAgainst: true,

	GroupByWithModifier: true, // WITH ROLLUP
	LimitComma:          true,
	LockClauses:         true,

	IndexHints:         true,
	PartitionSelection: true,
	StraightJoin:       true,

	InsertSet:      true,
	ReplaceInto:    true,
	OnDuplicateKey: true,
	DeleteUsing:    true,

	BeginEndBlock: true, // stored program bodies
}
