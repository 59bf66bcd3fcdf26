package mysql

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// parseStatement handles LOCK TABLES and UNLOCK TABLES. Other statements
// fall through to the core parser.
func parseStatement(p spi.ParserOps) (ast.Statement, bool, error) {
	switch {
	case p.ParseKeywords(keyword.LOCK, keyword.TABLES):
		stmt, err := parseLockTables(p)
		return stmt, true, err
	case p.ParseKeywords(keyword.UNLOCK, keyword.TABLES):
		return &ast.UnlockTables{}, true, nil
	}
	return nil, false, nil
}

func parseLockTables(p spi.ParserOps) (*ast.LockTables, error) {
	stmt := &ast.LockTables{}
	for {
		table, err := parseLockTable(p)
		if err != nil {
			return nil, err
		}
		stmt.Tables = append(stmt.Tables, table)
		if !p.ConsumeToken(token.COMMA) {
			return stmt, nil
		}
	}
}

func parseLockTable(p spi.ParserOps) (ast.LockTable, error) {
	var t ast.LockTable
	name, err := p.ParseObjectName()
	if err != nil {
		return t, err
	}
	t.Name = name

	if p.ParseKeyword(keyword.AS) || !isLockMode(p) {
		alias, err := p.ParseIdentifier()
		if err != nil {
			return t, err
		}
		t.Alias = &alias
	}

	switch {
	case p.ParseKeywords(keyword.READ, keyword.LOCAL):
		t.Mode = "READ LOCAL"
	case p.ParseKeyword(keyword.READ):
		t.Mode = "READ"
	case p.ParseKeywords(keyword.LOW_PRIORITY, keyword.WRITE):
		t.Mode = "LOW_PRIORITY WRITE"
	case p.ParseKeyword(keyword.WRITE):
		t.Mode = "WRITE"
	default:
		return t, p.Expected("READ or WRITE", p.PeekToken())
	}
	return t, nil
}

func isLockMode(p spi.ParserOps) bool {
	return p.PeekKeyword(keyword.READ) || p.PeekKeyword(keyword.WRITE) || p.PeekKeyword(keyword.LOW_PRIORITY)
}
