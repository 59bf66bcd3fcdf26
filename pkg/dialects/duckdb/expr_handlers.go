package duckdb

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// parsePrefix handles struct and map literals. The current token has not
// been consumed.
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

func isPower(tok token.TokenWithSpan) bool {
	t, ok := token.LookupSymbol(powerOp)
	return ok && tok.Type == t
}

// precedence ranks ** with ^.
func precedence(p spi.ParserOps) (int, bool) {
	if isPower(p.PeekToken()) {
		return spi.PrecedenceCaret, true
	}
	return 0, false
}

func parseInfix(p spi.ParserOps, left ast.Expr, prec int) (ast.Expr, bool, error) {
	if !isPower(p.PeekToken()) {
		return nil, false, nil
	}
	p.NextToken()
	expr, err := dialect.ParseBinaryRest(p, left, ast.BinaryOperator(powerOp), prec)
	return expr, true, err
}
