package spark

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
)

func init() {
	dialect.Register(Spark, "sparksql")
}

// Spark is the Spark SQL dialect. DIV is its only keyword operator beyond
// the flags in Config.
var Spark = dialect.New(Config).
	QuoteStyle(dialect.Backtick).
	PrecedenceHook(precedence).
	InfixHook(parseInfix).
	Build()

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
