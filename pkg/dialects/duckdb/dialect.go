// Package duckdb provides the DuckDB SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package duckdb

import (
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
)

func init() {
	dialect.Register(DuckDB)
}

// DuckDB-specific operators (// integer division is builtin).
const powerOp = "**"

// DuckDB is the DuckDB dialect.
// On top of Config it wires:
// - {'k': v} struct literals and MAP {k: v}
// - the ** power operator
// - INSTALL and LOAD for extensions
var DuckDB = dialect.New(Config).
	AddOperator(powerOp).
	StatementHook(parseStatement).
	PrefixHook(parsePrefix).
	PrecedenceHook(precedence).
	InfixHook(parseInfix).
	Build()
