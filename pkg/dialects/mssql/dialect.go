package mssql

import (
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
)

func init() {
	dialect.Register(MsSQL, "tsql", "sqlserver")
}

// MsSQL is the SQL Server dialect. Temporary tables (#t, ##t) and
// variables (@v) lex as identifiers, and [brackets] quote names.
var MsSQL = dialect.New(Config).
	Identifiers(isIdentifierStart, isIdentifierPart).
	QuoteStyle(dialect.Bracket).
	StatementHook(parseStatement).
	Build()

func isIdentifierStart(r rune) bool {
	return r == '#' || r == '@' || dialect.StandardIdentifierStart(r)
}

func isIdentifierPart(r rune) bool {
	switch r {
	case '@', '#', '$':
		return true
	}
	return dialect.StandardIdentifierPart(r)
}
