// Package sqlite provides the SQLite dialect definition.
package sqlite

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the SQLite dialect configuration.
var Config = dialect.Config{
	Name:             "sqlite",
	IdentifierQuotes: "\"`[",
	Normalization:    dialect.NormCaseInsensitive,

	AtPlaceholders: true, // ?, ?NNN, :name, @name and $name

	RLike:                   true, // REGEXP
	FilterDuringAggregation: true,

	WindowClauseNamedWindowReference: true,
	LimitComma:                       true,

	InsertOr:    true,
	ReplaceInto: true,
	OnConflict:  true,
	Returning:   true,
	UpdateFrom:  true,
}
