// Package mssql provides the Microsoft SQL Server (T-SQL) dialect definition.
package mssql

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the SQL Server dialect configuration.
var Config = dialect.Config{
	Name:             "mssql",
	IdentifierQuotes: `"[`,
	Normalization:    dialect.NormCaseInsensitive,

	NestedComments: true,

	WithinGroup:             true, // STRING_AGG ... WITHIN GROUP
	ConvertTypeFirst:        true, // CONVERT(INT, x, 1)

	Top:         true,
	SelectInto:  true,
	ForXMLJSON:  true,

	WindowClauseNamedWindowReference: true,
	GroupByExpr:                      true,
	GroupByWithModifier:              true,

	TableHints:      true, // WITH (NOLOCK)
	TableVersioning: true, // FOR SYSTEM_TIME AS OF
	ApplyJoins:      true,

	UpdateFrom:  true,

	BeginEndBlock: true, // also BEGIN TRY / BEGIN CATCH
}
