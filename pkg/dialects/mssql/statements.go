package mssql

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// parseStatement owns the T-SQL forms of IF and WHILE, whose bodies are a
// single statement (usually a BEGIN ... END block) rather than THEN ... END
// IF.
func parseStatement(p spi.ParserOps) (ast.Statement, bool, error) {
	tok := p.PeekToken()
	switch {
	case tok.IsKeyword(keyword.IF):
		p.NextToken()
		stmt, err := parseIf(p, tok)
		return stmt, true, err
	case tok.IsKeyword(keyword.WHILE):
		p.NextToken()
		stmt, err := parseWhile(p)
		return stmt, true, err
	}
	return nil, false, nil
}

func parseIf(p spi.ParserOps, ifTok token.TokenWithSpan) (*ast.If, error) {
	cond, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{
		Blocks: []ast.ConditionalBlock{{
			Keyword:    "IF",
			Token:      ast.Attach(ifTok),
			Condition:  cond,
			Statements: []ast.Statement{body},
			Single:     true,
		}},
	}

	// IF x SELECT 1; ELSE SELECT 2
	if p.PeekToken().Type == token.SEMICOLON && p.PeekNthToken(1).IsKeyword(keyword.ELSE) {
		p.NextToken()
	}
	if p.PeekKeyword(keyword.ELSE) {
		elseTok := p.NextToken()
		elseBody, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = &ast.ConditionalBlock{
			Keyword:    "ELSE",
			Token:      ast.Attach(elseTok),
			Statements: []ast.Statement{elseBody},
			Single:     true,
		}
	}
	return stmt, nil
}

func parseWhile(p spi.ParserOps) (*ast.While, error) {
	cond, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Style: ast.LoopSingle, Body: []ast.Statement{body}}, nil
}
