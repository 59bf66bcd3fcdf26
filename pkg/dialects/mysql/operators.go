package mysql

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// precedence reports the keyword operators the core grammar does not know.
func precedence(p spi.ParserOps) (int, bool) {
	switch {
	case p.PeekKeyword(keyword.DIV), p.PeekKeyword(keyword.MOD):
		return spi.PrecedenceMultiply, true
	case p.PeekKeyword(keyword.XOR):
		return spi.PrecedenceXor, true
	case p.PeekKeyword(keyword.MEMBER) && p.PeekNthToken(1).IsKeyword(keyword.OF):
		return spi.PrecedenceIs, true
	}
	return 0, false
}

func parseInfix(p spi.ParserOps, left ast.Expr, prec int) (ast.Expr, bool, error) {
	var op ast.BinaryOperator
	switch {
	case p.ParseKeyword(keyword.DIV):
		op = ast.OpIntDiv
	case p.ParseKeyword(keyword.MOD):
		op = ast.OpMod
	case p.ParseKeyword(keyword.XOR):
		op = ast.OpXor
	case p.ParseKeywords(keyword.MEMBER, keyword.OF):
		expr, err := parseMemberOf(p, left)
		return expr, true, err
	default:
		return nil, false, nil
	}
	expr, err := dialect.ParseBinaryRest(p, left, op, prec)
	return expr, true, err
}

// parseMemberOf parses the parenthesised array of `v MEMBER OF(array)`.
func parseMemberOf(p spi.ParserOps, left ast.Expr) (ast.Expr, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	arr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.MemberOf{Value: left, Array: arr}, nil
}
