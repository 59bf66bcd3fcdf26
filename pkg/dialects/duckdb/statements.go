package duckdb

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
)

// parseStatement handles INSTALL ext and LOAD ext. LOAD DATA belongs to
// other dialects and is left to the core parser.
func parseStatement(p spi.ParserOps) (ast.Statement, bool, error) {
	switch {
	case p.ParseKeyword(keyword.INSTALL):
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, true, err
		}
		return &ast.Install{Name: name}, true, nil
	case p.PeekKeyword(keyword.LOAD) && !p.PeekNthToken(1).IsKeyword(keyword.DATA):
		p.NextToken()
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, true, err
		}
		return &ast.Load{Name: name}, true, nil
	}
	return nil, false, nil
}
