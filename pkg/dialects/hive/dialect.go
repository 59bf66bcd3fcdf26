package hive

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
)

func init() {
	dialect.Register(Hive)
}

// Hive is the Apache Hive dialect. Unquoted names may carry ${var}
// substitutions, and DIV is integer division.
var Hive = dialect.New(Config).
	Identifiers(isIdentifierStart, isIdentifierPart).
	QuoteStyle(dialect.Backtick).
	PrecedenceHook(precedence).
	InfixHook(parseInfix).
	Build()

func isIdentifierStart(r rune) bool {
	return r == '$' || dialect.StandardIdentifierStart(r)
}

func isIdentifierPart(r rune) bool {
	return r == '$' || r == '{' || r == '}' || dialect.StandardIdentifierPart(r)
}

func precedence(p spi.ParserOps) (int, bool) {
	if p.PeekKeyword(keyword.DIV) {
		return spi.PrecedenceMultiply, true
	}
	return 0, false
}

func parseInfix(p spi.ParserOps, left ast.Expr, prec int) (ast.Expr, bool, error) {
	if !p.ParseKeyword(keyword.DIV) {
		return nil, false, nil
	}
	expr, err := dialect.ParseBinaryRest(p, left, ast.OpIntDiv, prec)
	return expr, true, err
}
